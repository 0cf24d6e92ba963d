package catalogclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/catalogo-ecom/internal/catalog"
	"github.com/MikeMC777/catalogo-ecom/internal/httpx"
	"github.com/MikeMC777/catalogo-ecom/internal/seed"
)

type server struct {
	*httptest.Server
	notModified atomic.Int32
	lastQuery   atomic.Value
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := catalog.NewService(catalog.NewMemStore(seed.Demo()), catalog.DefaultOptions())
	s := &server{}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		s.lastQuery.Store(c.Request.URL.RawQuery)
		c.Next()
		if c.Writer.Status() == http.StatusNotModified {
			s.notModified.Add(1)
		}
	})
	r.GET("/products/byBrands", func(c *gin.Context) {
		res, err := svc.ListByBrandsOrPrice(c.Request.Context(), catalog.RawParams{
			Category: c.Query("selectedCategory"),
			Brands:   catalog.SplitBrands(c.QueryArray("selectedBrands")...),
			PageSize: c.Query("pageSize"),
			Sort:     c.Query("sortOption"),
		})
		if err != nil {
			var body catalog.HTTPError
			body.Error = err.Error()
			var ce *catalog.Error
			if errors.As(err, &ce) {
				body.Code = ce.Code()
			}
			httpx.WriteJSON(c, http.StatusNotFound, body)
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	})
	r.GET("/products/:productId", func(c *gin.Context) {
		res, err := svc.ProductDetails(c.Request.Context(), c.Param("productId"))
		if err != nil {
			httpx.WriteJSON(c, http.StatusNotFound, catalog.HTTPError{Error: err.Error(), Code: "ProductNotFound"})
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

func TestClient_ListingRevalidatesWithETag(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL + "/")
	p := catalog.RawParams{Category: "Shoes", PageSize: "5", Sort: "Name", Brands: []string{"Nike", "Adidas"}}

	first, err := c.Listing(context.Background(), "byBrands", p)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", first.SelectedCategory)
	assert.Len(t, first.Products, 5)
	assert.Contains(t, srv.lastQuery.Load(), "selectedBrands=Nike%2CAdidas")

	second, err := c.Listing(context.Background(), "byBrands", p)
	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.notModified.Load())
	assert.Equal(t, first, second)
}

func TestClient_RemoteError(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL)

	_, err := c.Product(context.Background(), "nope")
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusNotFound, re.Status)
	assert.Equal(t, "ProductNotFound", re.Body.Code)
	assert.Contains(t, re.Error(), "ProductNotFound")
}

func TestClient_Product(t *testing.T) {
	srv := newServer(t)

	res, err := New(srv.URL).Product(context.Background(), "laptops-002")
	require.NoError(t, err)
	assert.Equal(t, "Laptops", res.Product.Category)
}

func TestClient_UnknownOperation(t *testing.T) {
	_, err := New("http://127.0.0.1:0").Listing(context.Background(), "everything", catalog.RawParams{})
	assert.Error(t, err)
}

func TestListingQuery(t *testing.T) {
	q := listingQuery("initial", catalog.RawParams{PageSize: "3", Category: "Shoes"})
	assert.Equal(t, "pageSize=3", q.Encode())

	q = listingQuery("page", catalog.RawParams{Category: "Shoes", PageNumber: "2", MinPrice: "1", MaxPrice: "9"})
	assert.Equal(t, "2", q.Get("pageNumber"))
	assert.Equal(t, "1", q.Get("minPrice"))
	assert.Empty(t, q.Get("selectedBrands"))
}
