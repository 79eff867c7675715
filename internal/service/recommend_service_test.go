package service

import (
	"fmt"
	"testing"

	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"
	"github.com/aquatech-store/internal/watch"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRecommendTest(t *testing.T) (*RecommendService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:recommend_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	catalog := NewCatalogService(repository.NewProductRepository(db), watch.NewHub(), 30)
	return NewRecommendService(catalog), db
}

func seedRecommendProduct(t *testing.T, db *gorm.DB, slug, kind, category string) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:     slug,
		Kind:     kind,
		Name:     slug,
		Category: category,
		Price:    models.NewMoneyFromFloat(999),
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func cartWith(products ...*models.Product) CartSnapshot {
	snapshot := CartSnapshot{}
	for _, p := range products {
		snapshot.Items = append(snapshot.Items, CartLineView{
			ProductID: p.ID,
			Category:  p.Category,
			Quantity:  1,
		})
		snapshot.TotalQuantity++
	}
	return snapshot
}

func TestRecommendPurifierInCartSuggestsServices(t *testing.T) {
	svc, db := setupRecommendTest(t)
	purifier := seedRecommendProduct(t, db, "rec-purifier", constants.CatalogKindProduct, constants.CategoryPurifiers)
	seedRecommendProduct(t, db, "rec-install", constants.CatalogKindService, constants.CategoryServices)
	seedRecommendProduct(t, db, "rec-annual", constants.CatalogKindService, constants.CategoryServices)

	rec := svc.ForCart(cartWith(purifier))

	if len(rec.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(rec.Items))
	}
	for _, item := range rec.Items {
		if item.Category != constants.CategoryServices {
			t.Fatalf("recommended category want Services got %s", item.Category)
		}
	}
	if rec.Title != "Recommended for your Purifiers" {
		t.Fatalf("unexpected title %q", rec.Title)
	}
}

func TestRecommendColdStartShowsTopPurifiers(t *testing.T) {
	svc, db := setupRecommendTest(t)
	for i := 0; i < 5; i++ {
		seedRecommendProduct(t, db, fmt.Sprintf("rec-cold-%d", i), constants.CatalogKindProduct, constants.CategoryPurifiers)
	}

	rec := svc.ForCart(CartSnapshot{})

	if len(rec.Items) != 3 {
		t.Fatalf("cold start items want 3 got %d", len(rec.Items))
	}
	for _, item := range rec.Items {
		if item.Category != constants.CategoryPurifiers {
			t.Fatalf("cold start category want Purifiers got %s", item.Category)
		}
	}
	if rec.Title != "Best Sellers for Your Home" {
		t.Fatalf("unexpected cold start title %q", rec.Title)
	}
}

func TestRecommendNoRuleMatchDefaultsToFilters(t *testing.T) {
	svc, db := setupRecommendTest(t)
	accessory := seedRecommendProduct(t, db, "rec-accessory", constants.CatalogKindProduct, constants.CategoryAccessories)
	seedRecommendProduct(t, db, "rec-filter-a", constants.CatalogKindProduct, constants.CategoryFilters)
	seedRecommendProduct(t, db, "rec-filter-b", constants.CatalogKindProduct, constants.CategoryFilters)

	// Accessories match no rule.
	rec := svc.ForCart(cartWith(accessory))

	if len(rec.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(rec.Items))
	}
	for _, item := range rec.Items {
		if item.Category != constants.CategoryFilters {
			t.Fatalf("default category want Filters got %s", item.Category)
		}
	}
}

func TestRecommendExcludesCartItemsAndFallsBackToAccessories(t *testing.T) {
	svc, db := setupRecommendTest(t)
	purifier := seedRecommendProduct(t, db, "rec-fb-purifier", constants.CatalogKindProduct, constants.CategoryPurifiers)
	seedRecommendProduct(t, db, "rec-fb-tap", constants.CatalogKindProduct, constants.CategoryAccessories)

	// Rule points at Services but the catalog has none, so the
	// accessories fallback kicks in.
	rec := svc.ForCart(cartWith(purifier))

	if len(rec.Items) != 1 {
		t.Fatalf("fallback items want 1 got %d", len(rec.Items))
	}
	if rec.Items[0].Category != constants.CategoryAccessories {
		t.Fatalf("fallback category want Accessories got %s", rec.Items[0].Category)
	}
	if rec.Title != "Essential Accessories" {
		t.Fatalf("unexpected fallback title %q", rec.Title)
	}
}

func TestRecommendLimitsToThree(t *testing.T) {
	svc, db := setupRecommendTest(t)
	purifier := seedRecommendProduct(t, db, "rec-limit-purifier", constants.CatalogKindProduct, constants.CategoryPurifiers)
	for i := 0; i < 6; i++ {
		seedRecommendProduct(t, db, fmt.Sprintf("rec-limit-svc-%d", i), constants.CatalogKindService, constants.CategoryServices)
	}

	rec := svc.ForCart(cartWith(purifier))

	if len(rec.Items) != 3 {
		t.Fatalf("items want 3 got %d", len(rec.Items))
	}
}
