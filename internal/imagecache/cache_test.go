package imagecache_test

import (
	"errors"
	"io"
	"testing"

	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/homegrocer/dashboard-cards/internal/imagecache"
	"github.com/homegrocer/dashboard-cards/internal/mocks"
	"github.com/homegrocer/dashboard-cards/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(catalog *mocks.MockCatalog) *imagecache.Cache {
	return imagecache.New(catalog, logger.New(logger.Options{Writer: io.Discard}))
}

func TestResolve_FiltersKnownIDs(t *testing.T) {
	catalog := mocks.NewMockCatalog()
	catalog.Metas["10"] = domain.ImageMeta{Image: "img-10", AmountText: "1 l"}
	catalog.Metas["11"] = domain.ImageMeta{Image: "img-11"}
	catalog.Metas["12"] = domain.ImageMeta{Image: "img-12"}
	cache := newCache(catalog)

	cache.Resolve(t.Context(), []string{"10", "11"})
	// Overlapping set: only the unseen id goes out.
	cache.Resolve(t.Context(), []string{"11", "12"})

	lookups := catalog.Lookups()
	require.Len(t, lookups, 2)
	assert.Equal(t, []string{"10", "11"}, lookups[0])
	assert.Equal(t, []string{"12"}, lookups[1])

	meta, ok := cache.Get("10")
	require.True(t, ok)
	assert.Equal(t, domain.ImageMeta{Image: "img-10", AmountText: "1 l"}, meta)
}

func TestResolve_NoCallWhenAllCached(t *testing.T) {
	catalog := mocks.NewMockCatalog()
	catalog.Metas["10"] = domain.ImageMeta{Image: "img-10"}
	cache := newCache(catalog)

	cache.Resolve(t.Context(), []string{"10"})
	cache.Resolve(t.Context(), []string{"10", "10", ""})

	assert.Len(t, catalog.Lookups(), 1)
}

func TestResolve_FailureSwallowed(t *testing.T) {
	catalog := mocks.NewMockCatalog()
	catalog.LookupErr = errors.New("catalog down")
	cache := newCache(catalog)

	cache.Resolve(t.Context(), []string{"10"})

	_, ok := cache.Get("10")
	assert.False(t, ok)

	// A failed id is retried on the next resolve, it was never cached.
	catalog.LookupErr = nil
	catalog.Metas["10"] = domain.ImageMeta{Image: "img-10"}
	cache.Resolve(t.Context(), []string{"10"})

	_, ok = cache.Get("10")
	assert.True(t, ok)
}

func TestResolve_NilCatalog(t *testing.T) {
	cache := imagecache.New(nil, nil)

	cache.Resolve(t.Context(), []string{"10"})

	assert.Empty(t, cache.Snapshot())
}
