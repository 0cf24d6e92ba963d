package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/catalogo-ecom/internal/catalog"
	"github.com/MikeMC777/catalogo-ecom/internal/httpx"
)

// rawParams reads the listing parameters from the query string. Brands may
// come comma-joined, repeated, or both.
func rawParams(c *gin.Context) catalog.RawParams {
	return catalog.RawParams{
		Category:   c.Query("selectedCategory"),
		Brands:     catalog.SplitBrands(c.QueryArray("selectedBrands")...),
		PageSize:   c.Query("pageSize"),
		MinPrice:   c.Query("minPrice"),
		MaxPrice:   c.Query("maxPrice"),
		PageNumber: c.Query("pageNumber"),
		Sort:       c.Query("sortOption"),
	}
}

func statusFor(k catalog.Kind) int {
	switch k {
	case catalog.KindNotFound:
		return http.StatusNotFound
	case catalog.KindInvalidArgument:
		return http.StatusBadRequest
	case catalog.KindOutOfRange:
		return http.StatusUnprocessableEntity
	case catalog.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, op string, err error) {
	var ce *catalog.Error
	if !errors.As(err, &ce) {
		log.Printf("[catalog] rid=%s op=%s err=%v", httpx.RID(c), op, err)
		httpx.WriteJSON(c, http.StatusInternalServerError, catalog.HTTPError{Error: "internal error"})
		return
	}
	status := statusFor(ce.Kind)
	if status >= http.StatusInternalServerError {
		log.Printf("[catalog] rid=%s op=%s kind=%s err=%v", httpx.RID(c), op, ce.Kind, err)
	}
	httpx.WriteJSON(c, status, catalog.HTTPError{
		Error:          ce.Error(),
		Code:           ce.Code(),
		Dimension:      string(ce.Dimension),
		SelectedBrands: ce.Brands,
	})
}

// initialListingHandler godoc
// @Summary      Initial storefront listing
// @Description  Page 1 of the first category sorted by name, with category list, counts and bestsellers
// @Tags         products
// @Produce      json
// @Param        pageSize  query  int  false  "Items per page"  default(10)
// @Success      200  {object}  catalog.ListingResponse
// @Failure      400  {object}  catalog.HTTPError
// @Failure      404  {object}  catalog.HTTPError
// @Failure      503  {object}  catalog.HTTPError
// @Router       /products/initial [get]
func initialListingHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.InitialListing(c.Request.Context(), c.Query("pageSize"))
		if err != nil {
			writeError(c, "initialListing", err)
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	}
}

// listByCategoryHandler godoc
// @Summary      Switch category
// @Description  Page 1 of a category; brand and price filters are reset
// @Tags         products
// @Produce      json
// @Param        selectedCategory  query  string  true  "Category name"
// @Param        sortOption        query  string  true  "Sort option"  Enums(Name, Highest Price, Lowest Price, Rating)
// @Param        pageSize          query  int     true  "Items per page"
// @Success      200  {object}  catalog.ListingResponse
// @Failure      400  {object}  catalog.HTTPError
// @Failure      404  {object}  catalog.HTTPError
// @Router       /products/byCategory [get]
func listByCategoryHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ListByCategory(c.Request.Context(), rawParams(c))
		if err != nil {
			writeError(c, "listByCategory", err)
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	}
}

// listByBrandsHandler godoc
// @Summary      Filter by brands
// @Description  Page 1 under a new brand selection and optional price range
// @Tags         products
// @Produce      json
// @Param        selectedCategory  query  string  true   "Category name"
// @Param        sortOption        query  string  true   "Sort option"  Enums(Name, Highest Price, Lowest Price, Rating)
// @Param        pageSize          query  int     true   "Items per page"
// @Param        selectedBrands    query  string  false  "Comma-separated brand names"
// @Param        minPrice          query  number  false  "Minimum discounted price"
// @Param        maxPrice          query  number  false  "Maximum discounted price"
// @Success      200  {object}  catalog.ListingResponse
// @Failure      400  {object}  catalog.HTTPError
// @Failure      404  {object}  catalog.HTTPError
// @Failure      422  {object}  catalog.HTTPError
// @Router       /products/byBrands [get]
func listByBrandsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ListByBrandsOrPrice(c.Request.Context(), rawParams(c))
		if err != nil {
			writeError(c, "listByBrands", err)
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	}
}

// listByPriceHandler godoc
// @Summary      Filter by price
// @Description  Page 1 under a new price range; both bounds are required
// @Tags         products
// @Produce      json
// @Param        selectedCategory  query  string  true   "Category name"
// @Param        sortOption        query  string  true   "Sort option"  Enums(Name, Highest Price, Lowest Price, Rating)
// @Param        pageSize          query  int     true   "Items per page"
// @Param        minPrice          query  number  true   "Minimum discounted price"
// @Param        maxPrice          query  number  true   "Maximum discounted price"
// @Param        selectedBrands    query  string  false  "Comma-separated brand names"
// @Success      200  {object}  catalog.ListingResponse
// @Failure      400  {object}  catalog.HTTPError
// @Failure      404  {object}  catalog.HTTPError
// @Failure      422  {object}  catalog.HTTPError
// @Router       /products/byPrice [get]
func listByPriceHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := rawParams(c)
		if err := p.RequirePriceRange(); err != nil {
			writeError(c, "listByPrice", err)
			return
		}
		res, err := svc.ListByBrandsOrPrice(c.Request.Context(), p)
		if err != nil {
			writeError(c, "listByPrice", err)
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	}
}

// changePageHandler godoc
// @Summary      Change page
// @Description  Any page under the full filter state; the page must exist
// @Tags         products
// @Produce      json
// @Param        selectedCategory  query  string  true   "Category name"
// @Param        sortOption        query  string  true   "Sort option"  Enums(Name, Highest Price, Lowest Price, Rating)
// @Param        pageSize          query  int     true   "Items per page"
// @Param        pageNumber        query  int     true   "Page number"
// @Param        minPrice          query  number  true   "Minimum discounted price"
// @Param        maxPrice          query  number  true   "Maximum discounted price"
// @Param        selectedBrands    query  string  false  "Comma-separated brand names"
// @Success      200  {object}  catalog.ListingResponse
// @Failure      400  {object}  catalog.HTTPError
// @Failure      404  {object}  catalog.HTTPError
// @Failure      422  {object}  catalog.HTTPError
// @Router       /products [get]
func changePageHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ChangePage(c.Request.Context(), rawParams(c))
		if err != nil {
			writeError(c, "changePage", err)
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	}
}

// suggestedProductsHandler godoc
// @Summary      Suggested products
// @Description  Up to 8 other products of the same category
// @Tags         products
// @Produce      json
// @Param        category   query  string  true  "Category name"
// @Param        productId  query  string  true  "Product to exclude"
// @Success      200  {object}  catalog.Suggestions
// @Failure      400  {object}  catalog.HTTPError
// @Failure      404  {object}  catalog.HTTPError
// @Router       /products/suggestedProducts [get]
func suggestedProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.SuggestedProducts(c.Request.Context(), c.Query("category"), c.Query("productId"))
		if err != nil {
			writeError(c, "suggestedProducts", err)
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	}
}

// productDetailsHandler godoc
// @Summary      Product details
// @Tags         products
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200  {object}  catalog.ProductDetails
// @Failure      404  {object}  catalog.HTTPError
// @Router       /products/{productId} [get]
func productDetailsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ProductDetails(c.Request.Context(), c.Param("productId"))
		if err != nil {
			writeError(c, "productDetails", err)
			return
		}
		httpx.WriteJSON(c, http.StatusOK, res)
	}
}

func registerRoutes(r gin.IRouter, svc *catalog.Service) {
	r.GET("/products/initial", initialListingHandler(svc))
	r.GET("/products/byCategory", listByCategoryHandler(svc))
	r.GET("/products/byBrands", listByBrandsHandler(svc))
	r.GET("/products/byPrice", listByPriceHandler(svc))
	r.GET("/products/suggestedProducts", suggestedProductsHandler(svc))
	r.GET("/products/:productId", productDetailsHandler(svc))
	r.GET("/products", changePageHandler(svc))
}
