package campaign

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - No provider serves the built-in catalog", func(t *testing.T) {
		svc := NewService(nil, nil, nil, nil)

		campaigns := svc.List(ctx)
		require.Len(t, campaigns, len(FallbackCampaigns))
		assert.Equal(t, "camp-1", campaigns[0].ID)
		assert.Equal(t, "Tea Time", campaigns[0].Merchant)
	})

	t.Run("Success - Provider failure falls back silently", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := NewService(NewHTTPProvider(server.URL, time.Second), nil, nil, nil)
		campaigns := svc.List(ctx)
		assert.Len(t, campaigns, len(FallbackCampaigns))
	})

	t.Run("Success - Empty provider result falls back", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("[]"))
		}))
		defer server.Close()

		svc := NewService(NewHTTPProvider(server.URL, time.Second), nil, nil, nil)
		campaigns := svc.List(ctx)
		assert.Len(t, campaigns, len(FallbackCampaigns))
	})

	t.Run("Success - Provider rows are served when available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"camp-x","merchant":"Remote Burger","requirements":["Mention code"]}]`))
		}))
		defer server.Close()

		svc := NewService(NewHTTPProvider(server.URL, time.Second), nil, nil, nil)
		campaigns := svc.List(ctx)
		require.Len(t, campaigns, 1)
		assert.Equal(t, "Remote Burger", campaigns[0].Merchant)
		assert.Equal(t, []string{"Mention code"}, campaigns[0].Requirements)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil, nil, nil, nil)

	t.Run("Success - Get by id", func(t *testing.T) {
		c, err := svc.Get(ctx, "camp-3")
		require.NoError(t, err)
		assert.Equal(t, "camp-3", c.ID)
	})

	t.Run("Error - Unknown id", func(t *testing.T) {
		_, err := svc.Get(ctx, "camp-999")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Error - Refresh without provider", func(t *testing.T) {
		svc := NewService(nil, nil, nil, nil)
		assert.Error(t, svc.Refresh(ctx))
	})

	t.Run("Error - Refresh with empty catalog", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("[]"))
		}))
		defer server.Close()

		svc := NewService(NewHTTPProvider(server.URL, time.Second), nil, nil, nil)
		assert.Error(t, svc.Refresh(ctx))
	})
}

func TestFallbackCatalog(t *testing.T) {
	t.Run("Success - Catalog ids are unique and sequential", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, c := range FallbackCampaigns {
			assert.False(t, seen[c.ID], c.ID)
			seen[c.ID] = true
			assert.NotEmpty(t, c.Merchant)
			assert.NotEmpty(t, c.Requirements)
		}
		assert.Len(t, FallbackCampaigns, 11)
	})
}
