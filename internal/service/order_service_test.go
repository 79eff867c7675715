package service

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/queue"
	"github.com/aquatech-store/internal/repository"
	"github.com/aquatech-store/internal/watch"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:order_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.GuestCart{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	productRepo := repository.NewProductRepository(db)
	cartService := NewCartService(
		repository.NewCartRepository(db),
		productRepo,
		repository.NewGormGuestCartStore(db),
		watch.NewHub(),
	)
	queueClient, err := queue.NewClient(nil) // disabled queue
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}
	orderService := NewOrderService(repository.NewOrderRepository(db), productRepo, cartService, queueClient)
	return orderService, cartService, db
}

func checkoutInput(userID uint) PlaceOrderInput {
	return PlaceOrderInput{
		UserID:        userID,
		CustomerName:  "Karthik",
		CustomerPhone: "9876543210",
		CustomerEmail: "karthik@example.com",
		CustomerCity:  "Chennai",
		InvoiceType:   "GST Invoice",
		PaymentMethod: "UPI",
		Address:       models.JSON{"address": "12 Anna Salai", "city": "Chennai"},
	}
}

func TestPlaceOrderAppliesGSTAndClearsCart(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	product := seedCartServiceProduct(t, db, "order-gst", 1000, true)
	const userID = 6001

	if _, err := cartService.AddItem(userID, product.ID, 2); err != nil {
		t.Fatalf("fill cart failed: %v", err)
	}

	order, err := orderService.PlaceOrder(checkoutInput(userID))
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if order.Subtotal.String() != "2000.00" {
		t.Fatalf("subtotal want 2000.00 got %s", order.Subtotal.String())
	}
	if order.GSTAmount.String() != "360.00" {
		t.Fatalf("gst want 360.00 got %s", order.GSTAmount.String())
	}
	if order.Total.String() != "2360.00" {
		t.Fatalf("total want 2360.00 got %s", order.Total.String())
	}
	if order.GSTRate != constants.OrderGSTRate {
		t.Fatalf("gst rate want %v got %v", constants.OrderGSTRate, order.GSTRate)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("order items want 1 got %d", len(order.Items))
	}
	if order.Items[0].UnitPrice.String() != "1000.00" {
		t.Fatalf("unit price want 1000.00 got %s", order.Items[0].UnitPrice.String())
	}

	snapshot, err := cartService.Snapshot(userID)
	if err != nil {
		t.Fatalf("cart snapshot failed: %v", err)
	}
	if len(snapshot.Items) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d items", len(snapshot.Items))
	}
}

func TestPlaceOrderEmptyCartRejected(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t)

	if _, err := orderService.PlaceOrder(checkoutInput(6002)); err != ErrEmptyCart {
		t.Fatalf("want ErrEmptyCart got %v", err)
	}
}

func TestPlaceOrderRequiresContactFields(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	product := seedCartServiceProduct(t, db, "order-validate", 1000, true)
	const userID = 6003

	if _, err := cartService.AddItem(userID, product.ID, 1); err != nil {
		t.Fatalf("fill cart failed: %v", err)
	}

	input := checkoutInput(userID)
	input.CustomerPhone = "   "
	if _, err := orderService.PlaceOrder(input); err != ErrInvalidInput {
		t.Fatalf("blank phone: want ErrInvalidInput got %v", err)
	}

	input = checkoutInput(userID)
	input.CustomerEmail = ""
	if _, err := orderService.PlaceOrder(input); err != ErrInvalidInput {
		t.Fatalf("blank email: want ErrInvalidInput got %v", err)
	}

	input = checkoutInput(userID)
	input.AddressID = ""
	input.Address = nil
	if _, err := orderService.PlaceOrder(input); err != ErrInvalidInput {
		t.Fatalf("no address: want ErrInvalidInput got %v", err)
	}

	// A saved address reference alone is enough.
	input = checkoutInput(userID)
	input.Address = nil
	input.AddressID = "addr-1"
	if _, err := orderService.PlaceOrder(input); err != nil {
		t.Fatalf("address id only should pass validation, got %v", err)
	}
}

func TestOrderOwnershipScoping(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	product := seedCartServiceProduct(t, db, "order-scope", 1000, true)
	const userID = 6004

	if _, err := cartService.AddItem(userID, product.ID, 1); err != nil {
		t.Fatalf("fill cart failed: %v", err)
	}
	order, err := orderService.PlaceOrder(checkoutInput(userID))
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if _, err := orderService.GetByOrderNo(order.OrderNo, userID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if _, err := orderService.GetByOrderNo(order.OrderNo, 6999); err != ErrOrderNotFound {
		t.Fatalf("want ErrOrderNotFound got %v", err)
	}
}

func TestNewOrderNoFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^A1-\d{6}-\d{3}$`)
	for i := 0; i < 10; i++ {
		orderNo := NewOrderNo()
		if !pattern.MatchString(orderNo) {
			t.Fatalf("order no %q does not match A1-XXXXXX-XXX", orderNo)
		}
	}
}
