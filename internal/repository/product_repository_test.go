package repository

import (
	"testing"

	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createCatalogProduct(t *testing.T, repo *GormProductRepository, slug, kind, category, name string) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:     slug,
		Kind:     kind,
		Name:     name,
		Category: category,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(4999)),
		IsActive: true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFiltersByKindAndCategory(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "list-filter-purifier", constants.CatalogKindProduct, constants.CategoryPurifiers, "AquaPure RO Tower")
	createCatalogProduct(t, repo, "list-filter-service", constants.CatalogKindService, constants.CategoryServices, "Annual Maintenance")

	products, err := repo.List(ProductListFilter{
		Kind:       constants.CatalogKindService,
		Category:   constants.CategoryServices,
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	for _, item := range products {
		if item.Kind != constants.CatalogKindService {
			t.Fatalf("kind want %s got %s", constants.CatalogKindService, item.Kind)
		}
		if item.Category != constants.CategoryServices {
			t.Fatalf("category want %s got %s", constants.CategoryServices, item.Category)
		}
	}
	found := false
	for _, item := range products {
		if item.Slug == "list-filter-service" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected service slug in results")
	}
}

func TestProductListSearchIsCaseInsensitive(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "search-ci-target", constants.CatalogKindProduct, constants.CategoryFilters, "Sediment PreFilter Max")

	products, err := repo.List(ProductListFilter{Search: "prefilter", OnlyActive: true})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	found := false
	for _, item := range products {
		if item.Slug == "search-ci-target" {
			found = true
		}
	}
	if !found {
		t.Fatalf("case-insensitive search missed product")
	}
}

func TestProductUpsertBySlugKeepsIdentity(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	original := createCatalogProduct(t, repo, "upsert-keep-id", constants.CatalogKindProduct, constants.CategoryPurifiers, "Old Name")

	incoming := &models.Product{
		Slug:     "upsert-keep-id",
		Kind:     constants.CatalogKindProduct,
		Name:     "New Name",
		Category: constants.CategoryPurifiers,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(9999)),
		Rating:   4.5,
		IsActive: true,
	}
	if err := repo.UpsertBySlug(incoming); err != nil {
		t.Fatalf("upsert by slug failed: %v", err)
	}
	if incoming.ID != original.ID {
		t.Fatalf("id want %d got %d", original.ID, incoming.ID)
	}

	var got models.Product
	if err := db.First(&got, original.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Name != "New Name" {
		t.Fatalf("name want New Name got %s", got.Name)
	}
	if got.Rating != 4.5 {
		t.Fatalf("rating want 4.5 got %v", got.Rating)
	}

	var count int64
	if err := db.Model(&models.Product{}).Where("slug = ?", "upsert-keep-id").Count(&count).Error; err != nil {
		t.Fatalf("count slug rows failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("slug rows want 1 got %d", count)
	}
}

func TestProductUpsertBySlugCreatesWhenMissing(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	incoming := &models.Product{
		Slug:     "upsert-fresh",
		Kind:     constants.CatalogKindProduct,
		Name:     "Fresh Product",
		Category: constants.CategoryAccessories,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(499)),
		IsActive: true,
	}
	if err := repo.UpsertBySlug(incoming); err != nil {
		t.Fatalf("upsert new slug failed: %v", err)
	}
	if incoming.ID == 0 {
		t.Fatalf("expected id assigned on create")
	}

	got, err := repo.GetBySlug("upsert-fresh")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got == nil {
		t.Fatalf("product missing after upsert")
	}
}

func TestProductUpdateImageURL(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "image-backfill", constants.CatalogKindProduct, constants.CategoryPurifiers, "Backfill Target")

	if err := repo.UpdateImageURL("image-backfill", "/uploads/backfill.jpg?token=abc"); err != nil {
		t.Fatalf("update image url failed: %v", err)
	}

	got, err := repo.GetBySlug("image-backfill")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got == nil {
		t.Fatalf("product missing")
	}
	if got.ImageURL != "/uploads/backfill.jpg?token=abc" {
		t.Fatalf("image url not updated, got %s", got.ImageURL)
	}
}
