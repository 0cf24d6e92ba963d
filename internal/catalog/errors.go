package catalog

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrNoCategories       = errors.New("catalog has no categories")
	ErrUnknownBrand       = errors.New("some of the brands are not sold in the category")
	ErrInvalidPageSize    = errors.New("page size must be a positive integer")
	ErrInvalidPageNumber  = errors.New("page number must be a positive integer")
	ErrInvalidPriceRange  = errors.New("invalid price range")
	ErrPriceOutOfRange    = errors.New("price range exceeds the category price limits")
	ErrPageOutOfRange     = errors.New("the page requested does not exist")
	ErrInvalidSortOption  = errors.New("invalid sort option")
	ErrMissingParameter   = errors.New("required parameter missing")
	ErrEmptyResultAnomaly = errors.New("sorting produced an empty result")
	ErrStoreUnavailable   = errors.New("catalog store unavailable")
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidArgument
	KindOutOfRange
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindOutOfRange:
		return "OutOfRange"
	case KindUnavailable:
		return "Unavailable"
	default:
		return "Internal"
	}
}

// Dimension names the request facet an error is about, so a client can
// highlight the right control.
type Dimension string

const (
	DimCategory Dimension = "category"
	DimBrand    Dimension = "brand"
	DimPrice    Dimension = "price"
	DimPage     Dimension = "page"
	DimPageSize Dimension = "pageSize"
	DimSort     Dimension = "sort"
	DimProduct  Dimension = "product"
	DimStore    Dimension = "store"
)

// Error is the typed failure every catalog operation returns.
type Error struct {
	Kind      Kind
	Dimension Dimension
	Reason    string
	// Brands is set on brand errors: availability of every brand of the category.
	Brands BrandAvailability
	err    error
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.err.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.err }

// Code is the short name of the sentinel behind the error.
func (e *Error) Code() string {
	switch {
	case errors.Is(e.err, ErrCategoryNotFound), errors.Is(e.err, ErrNoCategories):
		return "CategoryNotFound"
	case errors.Is(e.err, ErrProductNotFound):
		return "ProductNotFound"
	case errors.Is(e.err, ErrUnknownBrand):
		return "UnknownBrand"
	case errors.Is(e.err, ErrInvalidPageSize):
		return "InvalidPageSize"
	case errors.Is(e.err, ErrInvalidPageNumber):
		return "InvalidPageNumber"
	case errors.Is(e.err, ErrInvalidPriceRange):
		return "InvalidPriceRange"
	case errors.Is(e.err, ErrPriceOutOfRange):
		return "PriceOutOfRange"
	case errors.Is(e.err, ErrPageOutOfRange):
		return "PageOutOfRange"
	case errors.Is(e.err, ErrInvalidSortOption):
		return "InvalidSortOption"
	case errors.Is(e.err, ErrMissingParameter):
		return "MissingParameter"
	case errors.Is(e.err, ErrEmptyResultAnomaly):
		return "EmptyResultAnomaly"
	case errors.Is(e.err, ErrStoreUnavailable):
		return "StoreUnavailable"
	default:
		return e.Kind.String()
	}
}

func (e *Error) GRPCStatus() *status.Status {
	var c codes.Code
	switch e.Kind {
	case KindNotFound:
		c = codes.NotFound
	case KindInvalidArgument:
		c = codes.InvalidArgument
	case KindOutOfRange:
		c = codes.OutOfRange
	case KindUnavailable:
		c = codes.Unavailable
	default:
		c = codes.Internal
	}
	return status.New(c, e.Error())
}

func newError(kind Kind, dim Dimension, sentinel error, format string, args ...any) *Error {
	return &Error{Kind: kind, Dimension: dim, Reason: fmt.Sprintf(format, args...), err: sentinel}
}

// unavailable wraps a store failure. Errors that are already typed pass through.
func unavailable(op string, err error) error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return &Error{
		Kind:      KindUnavailable,
		Dimension: DimStore,
		Reason:    fmt.Sprintf("%s: %v", op, err),
		err:       fmt.Errorf("%w: %w", ErrStoreUnavailable, err),
	}
}

// KindOf returns the kind of a catalog error, KindInternal for anything else.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}
