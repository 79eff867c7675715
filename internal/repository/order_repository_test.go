package repository

import (
	"fmt"
	"testing"

	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func createTestOrder(t *testing.T, repo *GormOrderRepository, userID uint, orderNo string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:       orderNo,
		UserID:        userID,
		CustomerName:  "Asha",
		CustomerPhone: "9000000000",
		CustomerCity:  "Chennai",
		Subtotal:      models.NewMoneyFromDecimal(decimal.NewFromInt(1000)),
		GSTAmount:     models.NewMoneyFromDecimal(decimal.NewFromInt(180)),
		Total:         models.NewMoneyFromDecimal(decimal.NewFromInt(1180)),
		GSTRate:       constants.OrderGSTRate,
		Status:        constants.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: 1, Name: "AquaPure RO", Category: constants.CategoryPurifiers, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(1000)), Quantity: 1},
		},
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderCreatePersistsItems(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := createTestOrder(t, repo, 7001, "A1-100001-001")

	var items []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		t.Fatalf("load order items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items want 1 got %d", len(items))
	}
}

func TestOrderListByUserReturnsNewestFirstWithItems(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	const userID = 7002
	createTestOrder(t, repo, userID, "A1-100002-001")
	createTestOrder(t, repo, userID, "A1-100002-002")

	orders, err := repo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders want 2 got %d", len(orders))
	}
	if orders[0].ID < orders[1].ID {
		t.Fatalf("expected newest order first")
	}
	if len(orders[0].Items) != 1 {
		t.Fatalf("items not preloaded")
	}
}

func TestOrderGetByOrderNoScopedToUser(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createTestOrder(t, repo, 7003, "A1-100003-001")

	got, err := repo.GetByOrderNoAndUser("A1-100003-001", 7003)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got == nil {
		t.Fatalf("order missing for owner")
	}

	other, err := repo.GetByOrderNoAndUser("A1-100003-001", 7999)
	if err != nil {
		t.Fatalf("get order wrong user failed: %v", err)
	}
	if other != nil {
		t.Fatalf("order leaked across users")
	}
}

func TestOrderListPagePaginatesByKeyset(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	const userID = 7004
	for i := 0; i < 5; i++ {
		createTestOrder(t, repo, userID, fmt.Sprintf("A1-100004-%03d", i))
	}

	first, err := repo.ListPage(PageFilter{Limit: 2})
	if err != nil {
		t.Fatalf("first page failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("first page want 2 got %d", len(first))
	}

	second, err := repo.ListPage(PageFilter{Limit: 2, LastID: first[len(first)-1].ID})
	if err != nil {
		t.Fatalf("second page failed: %v", err)
	}
	if len(second) == 0 {
		t.Fatalf("second page empty")
	}
	if second[0].ID <= first[len(first)-1].ID {
		t.Fatalf("keyset did not advance, got id %d", second[0].ID)
	}
}

func TestOrderHardDeleteRemovesOrdersAndItems(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := createTestOrder(t, repo, 7005, "A1-100005-001")

	affected, err := repo.HardDelete([]uint{order.ID})
	if err != nil {
		t.Fatalf("hard delete failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	var orderCount int64
	if err := db.Unscoped().Model(&models.Order{}).Where("id = ?", order.ID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("order row survived hard delete")
	}
	var itemCount int64
	if err := db.Unscoped().Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if itemCount != 0 {
		t.Fatalf("order items survived hard delete")
	}
}
