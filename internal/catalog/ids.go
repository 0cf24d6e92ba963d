package catalog

import "github.com/google/uuid"

// idNamespace scopes the name-based ids of categories and brands, so
// reseeding a database yields the same ids.
var idNamespace = uuid.MustParse("6f1c3a52-8d0e-4c53-9b7a-2f4e1d8c9a61")

func CategoryID(name string) string {
	return uuid.NewSHA1(idNamespace, []byte("category/"+name)).String()
}

func BrandID(category, brand string) string {
	return uuid.NewSHA1(idNamespace, []byte("brand/"+category+"/"+brand)).String()
}
