package repository

import (
	"testing"

	"github.com/aquatech-store/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartProduct(t *testing.T, db *gorm.DB, slug string) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:     slug,
		Kind:     "product",
		Name:     "AquaPure RO",
		Category: "Purifiers",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(14999)),
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartUpsertCreatesThenReplacesQuantity(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartProduct(t, db, "cart-upsert-replace")
	const userID = 9001

	if err := repo.Upsert(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := repo.Upsert(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 5}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	item, err := repo.GetByUserAndProduct(userID, product.ID)
	if err != nil {
		t.Fatalf("get cart item failed: %v", err)
	}
	if item == nil {
		t.Fatalf("cart item missing after upsert")
	}
	if item.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", item.Quantity)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cart rows want 1 got %d", count)
	}
}

func TestCartListByUserPreloadsProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartProduct(t, db, "cart-list-preload")
	const userID = 9002

	if err := repo.Upsert(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	items, err := repo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items want 1 got %d", len(items))
	}
	if items[0].Product == nil {
		t.Fatalf("product not preloaded")
	}
	if items[0].Product.Slug != product.Slug {
		t.Fatalf("product slug want %s got %s", product.Slug, items[0].Product.Slug)
	}
}

func TestCartDeleteMissingItemIsNoop(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	const userID = 9003

	if err := repo.DeleteByUserAndProduct(userID, 424242); err != nil {
		t.Fatalf("delete missing item failed: %v", err)
	}
}

func TestCartClearByUserRemovesOnlyThatUser(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartProduct(t, db, "cart-clear-scoped")
	const userID = 9004
	const otherID = 9005

	if err := repo.Upsert(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("upsert user failed: %v", err)
	}
	if err := repo.Upsert(&models.CartItem{UserID: otherID, ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("upsert other failed: %v", err)
	}

	if err := repo.ClearByUser(userID); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count cleared user failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("cleared user rows want 0 got %d", count)
	}
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", otherID).Count(&count).Error; err != nil {
		t.Fatalf("count other user failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("other user rows want 1 got %d", count)
	}
}
