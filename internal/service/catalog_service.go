package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"
	"github.com/aquatech-store/internal/watch"
)

// CatalogSnapshot is a full view of what the store sells. Fallback is
// true when the built-in catalog is being served instead of live data.
type CatalogSnapshot struct {
	Products []models.Product `json:"products"`
	Services []models.Product `json:"services"`
	Fallback bool             `json:"fallback"`
}

// CatalogService serves the live catalog and keeps watchers current.
// When the database is unreachable or empty it degrades to a built-in
// catalog so browsing keeps working.
type CatalogService struct {
	productRepo repository.ProductRepository
	hub         *watch.Hub
	interval    time.Duration

	mu       sync.Mutex
	lastBody []byte
}

// NewCatalogService creates a catalog service. refreshSeconds controls
// how often the poll loop re-reads the catalog for watchers.
func NewCatalogService(productRepo repository.ProductRepository, hub *watch.Hub, refreshSeconds int) *CatalogService {
	if refreshSeconds <= 0 {
		refreshSeconds = 30
	}
	return &CatalogService{
		productRepo: productRepo,
		hub:         hub,
		interval:    time.Duration(refreshSeconds) * time.Second,
	}
}

// Snapshot returns the current catalog split into products and service
// plans. A read failure or an unseeded table serves the fallback.
func (s *CatalogService) Snapshot() CatalogSnapshot {
	items, err := s.productRepo.List(repository.ProductListFilter{OnlyActive: true})
	if err != nil {
		logger.Warnw("catalog_read_failed", "error", err)
		return splitCatalog(fallbackCatalog(), true)
	}
	if len(items) == 0 {
		return splitCatalog(fallbackCatalog(), true)
	}
	return splitCatalog(items, false)
}

// List returns catalog entries matching a filter, falling back the same
// way Snapshot does when the store has no live data.
func (s *CatalogService) List(filter repository.ProductListFilter) ([]models.Product, bool, error) {
	filter.OnlyActive = true
	items, err := s.productRepo.List(filter)
	if err != nil {
		logger.Warnw("catalog_read_failed", "error", err)
		return filterFallback(filter), true, nil
	}
	if len(items) == 0 && filter.Search == "" && filter.Category == "" && filter.Kind == "" {
		return filterFallback(filter), true, nil
	}
	return items, false, nil
}

// GetBySlug resolves one catalog entry, consulting the fallback when the
// database cannot answer.
func (s *CatalogService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		for _, item := range fallbackCatalog() {
			if item.Slug == slug {
				entry := item
				return &entry, nil
			}
		}
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Watch subscribes to catalog updates and primes the channel with the
// current snapshot.
func (s *CatalogService) Watch() *watch.Subscription {
	sub := s.hub.Subscribe(constants.TopicCatalog)
	s.hub.Publish(constants.TopicCatalog, s.Snapshot())
	return sub
}

// Run polls the catalog until the context ends, publishing a snapshot
// whenever the contents change. Identical reads publish nothing, so
// idle watchers stay idle.
func (s *CatalogService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	logger.Infow("catalog_watch_started", "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Infow("catalog_watch_stopped")
			return
		case <-ticker.C:
			s.publishIfChanged()
		}
	}
}

func (s *CatalogService) publishIfChanged() {
	snapshot := s.Snapshot()
	body, err := json.Marshal(snapshot)
	if err != nil {
		logger.Warnw("catalog_snapshot_encode_failed", "error", err)
		return
	}
	s.mu.Lock()
	changed := string(body) != string(s.lastBody)
	if changed {
		s.lastBody = body
	}
	s.mu.Unlock()
	if changed {
		s.hub.Publish(constants.TopicCatalog, snapshot)
	}
}

func splitCatalog(items []models.Product, fallback bool) CatalogSnapshot {
	snapshot := CatalogSnapshot{
		Products: make([]models.Product, 0, len(items)),
		Services: make([]models.Product, 0),
		Fallback: fallback,
	}
	for _, item := range items {
		if item.Kind == constants.CatalogKindService {
			snapshot.Services = append(snapshot.Services, item)
			continue
		}
		snapshot.Products = append(snapshot.Products, item)
	}
	return snapshot
}

func filterFallback(filter repository.ProductListFilter) []models.Product {
	out := make([]models.Product, 0)
	for _, item := range fallbackCatalog() {
		if filter.Kind != "" && item.Kind != filter.Kind {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		out = append(out, item)
	}
	return out
}
