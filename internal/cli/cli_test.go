package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/catalogo-ecom/internal/catalog"
	"github.com/MikeMC777/catalogo-ecom/internal/catalogclient"
	"github.com/MikeMC777/catalogo-ecom/internal/seed"
)

type fakeAdmin struct {
	migrated int
	seeded   []catalog.Fixture
	err      error
}

func (f *fakeAdmin) Migrate(context.Context) error {
	f.migrated++
	return f.err
}

func (f *fakeAdmin) Seed(_ context.Context, fx catalog.Fixture) error {
	f.seeded = append(f.seeded, fx)
	return f.err
}

func memOpener(admin Admin) (Opener, *string) {
	var gotKind string
	return func(_ context.Context, kind, _ string) (*Backend, error) {
		gotKind = kind
		return &Backend{Store: catalog.NewMemStore(seed.Demo()), Admin: admin, Close: func() {}}, nil
	}, &gotKind
}

func run(t *testing.T, open Opener, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(open)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQuery_Initial(t *testing.T) {
	open, kind := memOpener(nil)

	out, err := run(t, open, "--store", "memory", "query", "initial", "--page-size", "5")
	require.NoError(t, err)
	assert.Equal(t, "memory", *kind)

	var res catalog.ListingResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Headphones", res.SelectedCategory)
	assert.Equal(t, 5, res.PageSize)
	assert.Len(t, res.Products, 5)
	assert.Len(t, res.CategoryList, 4)
}

func TestQuery_PageWithBrands(t *testing.T) {
	open, _ := memOpener(nil)

	out, err := run(t, open, "query", "byBrands",
		"--category", "Shoes", "--sort", "Lowest Price", "--page-size", "4",
		"--brands", "Nike,Adidas")
	require.NoError(t, err)

	var res catalog.ListingResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.SelectedBrands["Nike"])
	assert.True(t, res.SelectedBrands["Adidas"])
	assert.False(t, res.SelectedBrands["Asics"])
	for _, p := range res.Products {
		assert.Contains(t, []string{"Nike", "Adidas"}, p.Brand)
	}
	for i := 1; i < len(res.Products); i++ {
		assert.False(t, res.Products[i].DiscountedPrice.LessThan(res.Products[i-1].DiscountedPrice))
	}
}

func TestQuery_ErrorsCarryTheCatalogKind(t *testing.T) {
	open, _ := memOpener(nil)

	_, err := run(t, open, "query", "byCategory", "--category", "Boats")
	require.Error(t, err)
	assert.Equal(t, catalog.KindNotFound, catalog.KindOf(err))

	_, err = run(t, open, "query", "byPrice", "--category", "Shoes", "--min-price", "25")
	assert.ErrorIs(t, err, catalog.ErrMissingParameter)
}

func TestQuery_RejectsUnknownOperation(t *testing.T) {
	open, _ := memOpener(nil)

	_, err := run(t, open, "query", "everything")
	assert.Error(t, err)
}

func TestQuery_Product(t *testing.T) {
	open, _ := memOpener(nil)

	out, err := run(t, open, "query", "product", "--product-id", "shoes-001")
	require.NoError(t, err)
	var res catalog.ProductDetails
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Shoes", res.Product.Category)
}

func TestSeed_MigratesThenLoadsDemo(t *testing.T) {
	admin := &fakeAdmin{}
	open, _ := memOpener(admin)

	_, err := run(t, open, "seed")
	require.NoError(t, err)
	assert.Equal(t, 1, admin.migrated)
	require.Len(t, admin.seeded, 1)
	assert.Equal(t, seed.Demo(), admin.seeded[0])

	_, err = run(t, open, "seed", "--skip-migrate")
	require.NoError(t, err)
	assert.Equal(t, 1, admin.migrated)
}

func TestMigrate_PropagatesErrors(t *testing.T) {
	admin := &fakeAdmin{err: errors.New("permission denied")}
	open, _ := memOpener(admin)

	_, err := run(t, open, "migrate")
	assert.EqualError(t, err, "permission denied")
}

func TestMigrate_NeedsAdmin(t *testing.T) {
	open, _ := memOpener(nil)

	_, err := run(t, open, "migrate")
	assert.ErrorIs(t, err, errNoAdmin)
}

func TestOpenBackend_Memory(t *testing.T) {
	be, err := OpenBackend(context.Background(), "memory", "")
	require.NoError(t, err)
	defer be.Close()
	assert.Nil(t, be.Admin)

	_, err = OpenBackend(context.Background(), "sqlite", "")
	assert.Error(t, err)
}

func TestStoreFlagFromEnv(t *testing.T) {
	t.Setenv("CATALOG_STORE", "memory")
	open, kind := memOpener(nil)

	_, err := run(t, open, "query", "initial")
	require.NoError(t, err)
	assert.Equal(t, "memory", *kind)
}

func TestRemote_RefusesAdminCommands(t *testing.T) {
	opened := false
	open := func(context.Context, string, string) (*Backend, error) {
		opened = true
		return nil, errors.New("must not open a store")
	}

	_, err := run(t, open, "--remote", "http://127.0.0.1:1", "seed")
	assert.ErrorIs(t, err, errIsRemote)
	assert.False(t, opened)
}

func TestRemote_QueryUsesTheService(t *testing.T) {
	open := func(context.Context, string, string) (*Backend, error) {
		return nil, errors.New("must not open a store")
	}

	// nothing listens on port 1, so the call fails in the transport
	_, err := run(t, open, "--remote", "http://127.0.0.1:1", "query", "product", "--product-id", "x")
	require.Error(t, err)
	var re *catalogclient.RemoteError
	assert.False(t, errors.As(err, &re))
}

func TestBackendClosedWhenCommandFails(t *testing.T) {
	closed := 0
	open := func(context.Context, string, string) (*Backend, error) {
		return &Backend{
			Store: catalog.NewMemStore(seed.Demo()),
			Admin: &fakeAdmin{err: errors.New("connection reset")},
			Close: func() { closed++ },
		}, nil
	}

	_, err := run(t, open, "query", "byCategory", "--category", "Boats")
	require.Error(t, err)
	assert.Equal(t, 1, closed)

	_, err = run(t, open, "seed")
	require.Error(t, err)
	assert.Equal(t, 2, closed)

	_, err = run(t, open, "query", "initial")
	require.NoError(t, err)
	assert.Equal(t, 3, closed)
}
