package campaign

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhq/collabhub/pkg/cache"
	"github.com/collabhq/collabhub/pkg/metrics"
)

func TestListCaching(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"camp-x","merchant":"Remote Burger","requirements":["Mention code"]}]`))
	}))
	defer server.Close()

	svc := NewService(NewHTTPProvider(server.URL, time.Second), cacheClient, nil, nil)

	t.Run("Success - Second list is served from cache", func(t *testing.T) {
		first := svc.List(ctx)
		require.Len(t, first, 1)
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

		second := svc.List(ctx)
		require.Len(t, second, 1)
		assert.Equal(t, "Remote Burger", second[0].Merchant)
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	})

	t.Run("Success - Cache expiry goes back to the provider", func(t *testing.T) {
		mr.FastForward(2 * time.Hour)

		svc.List(ctx)
		assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	})
}

func TestCacheCounters(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"camp-x","merchant":"Remote Burger","requirements":["Mention code"]}]`))
	}))
	defer server.Close()

	m := metrics.New()
	svc := NewService(NewHTTPProvider(server.URL, time.Second), cacheClient, m, nil)

	// Cold cache: one miss, then the catalog is stored
	svc.List(ctx)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CacheHits.WithLabelValues("redis")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheMisses.WithLabelValues("redis")))

	// Warm cache: served without touching the provider
	svc.List(ctx)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheHits.WithLabelValues("redis")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheMisses.WithLabelValues("redis")))
}
