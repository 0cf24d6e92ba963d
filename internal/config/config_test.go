package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"CATALOG_HTTP_ADDR", "CATALOG_GRPC_ADDR", "CATALOG_STORE",
		"CATALOG_DEFAULT_PAGE_SIZE", "CATALOG_MAX_PAGE_SIZE", "CATALOG_SNAPSHOT_READS",
	} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, ":50061", cfg.GRPCAddr)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.True(t, cfg.SnapshotReads)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_STORE", "memory")
	t.Setenv("CATALOG_DEFAULT_PAGE_SIZE", "25")
	t.Setenv("CATALOG_MAX_PAGE_SIZE", "oops")
	t.Setenv("CATALOG_SNAPSHOT_READS", "false")
	cfg := Load()

	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize, "invalid numbers fall back to the default")
	assert.False(t, cfg.SnapshotReads)
}

func TestLoad_UnknownStoreFallsBack(t *testing.T) {
	t.Setenv("CATALOG_STORE", "spanner")
	assert.Equal(t, StorePostgres, Load().Store)
}
