// Package seed holds the demo catalog loaded by `catalogctl seed` and by
// the service when it runs on the in-memory store.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/catalogo-ecom/internal/catalog"
)

type categorySpec struct {
	name   string
	img    string
	brands []string
	models []string
	count  int
	// base and step shape the price ladder of the category
	base int64
	step int64
}

var specs = []categorySpec{
	{
		name: "Headphones", img: "headphones.png",
		brands: []string{"Bose", "JBL", "Sennheiser", "Sony"},
		models: []string{"Studio", "Pulse", "Air", "Bass", "Quiet"},
		count:  18, base: 2999, step: 1250,
	},
	{
		name: "Laptops", img: "laptops.png",
		brands: []string{"Apple", "Dell", "HP", "Lenovo"},
		models: []string{"Book", "Pro", "Slim", "Flex", "Edge"},
		count:  14, base: 49999, step: 7500,
	},
	{
		name: "Shoes", img: "shoes.png",
		brands: []string{"Adidas", "Asics", "Nike", "Reebok"},
		models: []string{"Runner", "Court", "Trail", "Classic", "Glide"},
		count:  25, base: 2000, step: 750,
	},
	{
		name: "Smartwatches", img: "smartwatches.png",
		brands: []string{"Amazfit", "Garmin", "Samsung"},
		models: []string{"Fit", "Active", "Venu", "Watch"},
		count:  9, base: 9999, step: 2200,
	},
}

// Demo returns the demo catalog. It is deterministic: calling it twice
// yields equal fixtures.
func Demo() catalog.Fixture {
	f := catalog.Fixture{Brands: map[string][]string{}}
	for _, s := range specs {
		f.Categories = append(f.Categories, catalog.Category{
			ID:   catalog.CategoryID(s.name),
			Name: s.name,
			Img:  s.img,
		})
		f.Brands[s.name] = append([]string(nil), s.brands...)
		for i := 0; i < s.count; i++ {
			f.Products = append(f.Products, product(s, i))
		}
	}
	return f
}

func product(s categorySpec, i int) catalog.Product {
	brand := s.brands[i%len(s.brands)]
	model := s.models[i%len(s.models)]
	// prices in cents, wrapped so neighbouring products are not monotonic
	cents := s.base + s.step*int64((i*7)%s.count)
	discounted := decimal.New(cents, -2)
	original := discounted.Mul(decimal.RequireFromString("1.25")).Round(2)
	rating := decimal.New(int64(30+(i*13)%21), -1)

	return catalog.Product{
		ID:               fmt.Sprintf("%s-%03d", slug(s.name), i+1),
		Title:            fmt.Sprintf("%s %s %d", brand, model, i+1),
		ShortDescription: fmt.Sprintf("%s %s from %s", model, s.name, brand),
		DiscountedPrice:  discounted,
		OriginalPrice:    original,
		Colors:           []string{"black", "white"},
		Category:         s.name,
		Brand:            brand,
		DisplayImage:     fmt.Sprintf("%s/%d.png", slug(s.name), i+1),
		Ratings:          rating,
		Reviews:          []string{},
		LongDescription:  fmt.Sprintf("The %s %s is part of the %s line.", brand, model, s.name),
		Overview:         []string{model, brand},
		KeyFeatures:      []map[string]string{{"Brand": brand}, {"Model": model}},
		IsBestseller:     i%6 == 0,
		AdditionalImages: []string{},
		DescriptionImage: fmt.Sprintf("%s/%d-description.png", slug(s.name), i+1),
	}
}

func slug(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
