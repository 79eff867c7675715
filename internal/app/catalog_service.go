package app

import (
	"context"
	"errors"

	"github.com/aquatech-store/internal/service"
)

// CatalogRefreshService runs the background catalog poller that keeps the
// in-memory snapshot current and fans out change notifications.
type CatalogRefreshService struct {
	catalog *service.CatalogService
}

func NewCatalogRefreshService(catalog *service.CatalogService) *CatalogRefreshService {
	return &CatalogRefreshService{catalog: catalog}
}

func (s *CatalogRefreshService) Name() string {
	return "catalog-refresh"
}

func (s *CatalogRefreshService) Start(ctx context.Context) error {
	if s == nil || s.catalog == nil {
		return errors.New("catalog service not initialized")
	}
	s.catalog.Run(ctx)
	return nil
}

func (s *CatalogRefreshService) Stop(ctx context.Context) error {
	return nil
}
