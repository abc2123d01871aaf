package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"oficina_xpto/pkg/client"

	"golang.org/x/sync/errgroup"
)

// CatalogLoader fetches the parts and services catalogs concurrently and
// caches them for line-item pickers.
//
// A failed load is non-fatal: the notifier gets a message, any previously
// loaded catalog stays available, and Ready reports whether dependent
// actions (adding catalog-backed lines) may proceed.
type CatalogLoader struct {
	api      *client.Client
	notifier Notifier

	mu       sync.RWMutex
	parts    []client.Part
	services []client.Service
	ready    bool
}

func NewCatalogLoader(api *client.Client, notifier Notifier) *CatalogLoader {
	return &CatalogLoader{api: api, notifier: notifier}
}

func (l *CatalogLoader) Load(ctx context.Context) error {
	var (
		parts    []client.Part
		services []client.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		parts, err = l.api.ListParts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		services, err = l.api.ListServices(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if l.notifier != nil {
			l.notifier.Notify(fmt.Sprintf("catálogo indisponível: %v", err))
		}
		return err
	}

	l.mu.Lock()
	l.parts = parts
	l.services = services
	l.ready = true
	l.mu.Unlock()
	return nil
}

// Ready reports whether at least one load succeeded.
func (l *CatalogLoader) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ready
}

func (l *CatalogLoader) Parts() []client.Part {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]client.Part, len(l.parts))
	copy(out, l.parts)
	return out
}

func (l *CatalogLoader) Services() []client.Service {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]client.Service, len(l.services))
	copy(out, l.services)
	return out
}
