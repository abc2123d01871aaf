package viewmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"oficina_xpto/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoader_Load(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pecas/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.Part{
			{ID: "p-1", Code: "FLT-001", Name: "filtro de óleo", SalePrice: 50, StockQty: 10},
		})
	})
	mux.HandleFunc("GET /servicos/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.Service{
			{ID: "s-1", Description: "troca de óleo", LaborPrice: 120},
		})
	})

	notifier := &notifyRecorder{}
	l := NewCatalogLoader(newViewClient(t, mux), notifier)

	assert.False(t, l.Ready())
	require.NoError(t, l.Load(context.Background()))

	assert.True(t, l.Ready())
	require.Len(t, l.Parts(), 1)
	assert.Equal(t, "FLT-001", l.Parts()[0].Code)
	require.Len(t, l.Services(), 1)
	assert.Equal(t, "troca de óleo", l.Services()[0].Description)
	assert.Empty(t, notifier.messages())
}

func TestCatalogLoader_InitialFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pecas/", func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "dynamo fora do ar")
	})
	mux.HandleFunc("GET /servicos/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.Service{})
	})

	notifier := &notifyRecorder{}
	l := NewCatalogLoader(newViewClient(t, mux), notifier)

	err := l.Load(context.Background())
	require.ErrorIs(t, err, client.ErrNetwork)

	assert.False(t, l.Ready())
	assert.Empty(t, l.Parts())
	require.Len(t, notifier.messages(), 1)
	assert.Contains(t, notifier.messages()[0], "catálogo indisponível")
}

func TestCatalogLoader_FailedReloadKeepsPreviousCatalog(t *testing.T) {
	var failing atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pecas/", func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			writeAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "dynamo fora do ar")
			return
		}
		json.NewEncoder(w).Encode([]client.Part{{ID: "p-1", Name: "filtro de óleo"}})
	})
	mux.HandleFunc("GET /servicos/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.Service{{ID: "s-1", Description: "troca de óleo"}})
	})

	notifier := &notifyRecorder{}
	l := NewCatalogLoader(newViewClient(t, mux), notifier)
	require.NoError(t, l.Load(context.Background()))

	failing.Store(true)
	err := l.Load(context.Background())
	require.Error(t, err)

	assert.True(t, l.Ready(), "a failed reload does not invalidate the cached catalog")
	require.Len(t, l.Parts(), 1)
	assert.Equal(t, "p-1", l.Parts()[0].ID)
	require.Len(t, l.Services(), 1)
	require.Len(t, notifier.messages(), 1)
}
