package service

import (
	"context"

	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"
	"github.com/aquatech-store/internal/watch"
)

// CartService owns both the signed-in cart (database backed) and the
// guest cart (token keyed blob). Every mutation of a signed-in cart
// publishes a fresh snapshot so watchers converge on the latest state.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	guestStore  repository.GuestCartStore
	hub         *watch.Hub
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, guestStore repository.GuestCartStore, hub *watch.Hub) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		guestStore:  guestStore,
		hub:         hub,
	}
}

// Snapshot projects the current cart for a signed-in user.
func (s *CartService) Snapshot(userID uint) (CartSnapshot, error) {
	if userID == 0 {
		return CartSnapshot{}, ErrInvalidInput
	}
	lines, err := s.userLines(userID)
	if err != nil {
		return CartSnapshot{}, err
	}
	return s.project(lines)
}

// AddItem adds quantity on top of whatever the cart already holds for
// the product. Adding never overwrites.
func (s *CartService) AddItem(userID, productID uint, quantity int) (CartSnapshot, error) {
	if userID == 0 || productID == 0 || quantity <= 0 {
		return CartSnapshot{}, ErrInvalidInput
	}
	if err := s.requireActiveProduct(productID); err != nil {
		return CartSnapshot{}, err
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return CartSnapshot{}, err
	}
	newQty := quantity
	if existing != nil {
		newQty += existing.Quantity
	}
	if err := s.cartRepo.Upsert(&models.CartItem{UserID: userID, ProductID: productID, Quantity: newQty}); err != nil {
		return CartSnapshot{}, err
	}
	return s.publish(userID)
}

// SetItemQuantity sets an absolute quantity. Zero or negative removes
// the line.
func (s *CartService) SetItemQuantity(userID, productID uint, quantity int) (CartSnapshot, error) {
	if userID == 0 || productID == 0 {
		return CartSnapshot{}, ErrInvalidInput
	}
	if quantity <= 0 {
		return s.RemoveItem(userID, productID)
	}
	if err := s.requireActiveProduct(productID); err != nil {
		return CartSnapshot{}, err
	}
	if err := s.cartRepo.Upsert(&models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}); err != nil {
		return CartSnapshot{}, err
	}
	return s.publish(userID)
}

// RemoveItem drops a line. Removing a missing line is a no-op.
func (s *CartService) RemoveItem(userID, productID uint) (CartSnapshot, error) {
	if userID == 0 || productID == 0 {
		return CartSnapshot{}, ErrInvalidInput
	}
	if err := s.cartRepo.DeleteByUserAndProduct(userID, productID); err != nil {
		return CartSnapshot{}, err
	}
	return s.publish(userID)
}

// Clear empties the cart.
func (s *CartService) Clear(userID uint) (CartSnapshot, error) {
	if userID == 0 {
		return CartSnapshot{}, ErrInvalidInput
	}
	if err := s.cartRepo.ClearByUser(userID); err != nil {
		return CartSnapshot{}, err
	}
	return s.publish(userID)
}

// Watch subscribes to the user's cart topic and primes the channel with
// the current snapshot so new watchers do not wait for the next change.
func (s *CartService) Watch(userID uint) (*watch.Subscription, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	sub := s.hub.Subscribe(watch.CartTopic(userID))
	snapshot, err := s.Snapshot(userID)
	if err != nil {
		sub.Unsubscribe()
		return nil, err
	}
	s.hub.Publish(watch.CartTopic(userID), snapshot)
	return sub, nil
}

// GuestSnapshot projects the guest cart for a token.
func (s *CartService) GuestSnapshot(ctx context.Context, token string) (CartSnapshot, error) {
	if token == "" {
		return CartSnapshot{}, ErrGuestTokenRequired
	}
	return s.project(s.guestStore.Load(ctx, token))
}

// GuestAddItem adds quantity to the guest cart, additively.
func (s *CartService) GuestAddItem(ctx context.Context, token string, productID uint, quantity int) (CartSnapshot, error) {
	if token == "" {
		return CartSnapshot{}, ErrGuestTokenRequired
	}
	if productID == 0 || quantity <= 0 {
		return CartSnapshot{}, ErrInvalidInput
	}
	if err := s.requireActiveProduct(productID); err != nil {
		return CartSnapshot{}, err
	}

	lines := s.guestStore.Load(ctx, token)
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, repository.GuestCartLine{ProductID: productID, Qty: quantity})
	}
	s.guestStore.Save(ctx, token, lines)
	return s.project(lines)
}

// GuestSetItemQuantity sets an absolute guest line quantity. Zero or
// negative removes the line.
func (s *CartService) GuestSetItemQuantity(ctx context.Context, token string, productID uint, quantity int) (CartSnapshot, error) {
	if token == "" {
		return CartSnapshot{}, ErrGuestTokenRequired
	}
	if productID == 0 {
		return CartSnapshot{}, ErrInvalidInput
	}

	lines := s.guestStore.Load(ctx, token)
	next := lines[:0]
	found := false
	for _, line := range lines {
		if line.ProductID == productID {
			found = true
			if quantity > 0 {
				line.Qty = quantity
				next = append(next, line)
			}
			continue
		}
		next = append(next, line)
	}
	if !found && quantity > 0 {
		if err := s.requireActiveProduct(productID); err != nil {
			return CartSnapshot{}, err
		}
		next = append(next, repository.GuestCartLine{ProductID: productID, Qty: quantity})
	}
	s.guestStore.Save(ctx, token, next)
	return s.project(next)
}

// GuestRemoveItem drops a guest line. Missing lines are a no-op.
func (s *CartService) GuestRemoveItem(ctx context.Context, token string, productID uint) (CartSnapshot, error) {
	return s.GuestSetItemQuantity(ctx, token, productID, 0)
}

// GuestClear empties the guest cart.
func (s *CartService) GuestClear(ctx context.Context, token string) (CartSnapshot, error) {
	if token == "" {
		return CartSnapshot{}, ErrGuestTokenRequired
	}
	if err := s.guestStore.Clear(ctx, token); err != nil {
		return CartSnapshot{}, err
	}
	return CartSnapshot{Items: []CartLineView{}, Subtotal: models.NewMoneyFromFloat(0)}, nil
}

// MergeGuestCart folds a guest cart into a signed-in cart. Quantities
// add: a product present in both ends up with the sum of both sides,
// so neither the anonymous session nor the account silently loses
// items. Guest lines whose product no longer exists are skipped. The
// guest cart is cleared only after every line landed; a partial
// failure keeps the guest copy so a retry can finish the job, and is
// reported as ErrCartMergePartial alongside the merged-so-far snapshot.
func (s *CartService) MergeGuestCart(ctx context.Context, userID uint, token string) (CartSnapshot, error) {
	if userID == 0 {
		return CartSnapshot{}, ErrInvalidInput
	}
	if token == "" {
		return s.Snapshot(userID)
	}

	guestLines := s.guestStore.Load(ctx, token)
	merged := true
	for _, line := range guestLines {
		if line.ProductID == 0 || line.Qty <= 0 {
			continue
		}
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			merged = false
			logger.Warnw("cart_merge_line_failed", "user_id", userID, "product_id", line.ProductID, "error", err)
			continue
		}
		if product == nil || !product.IsActive {
			continue
		}

		existing, err := s.cartRepo.GetByUserAndProduct(userID, line.ProductID)
		if err != nil {
			merged = false
			logger.Warnw("cart_merge_line_failed", "user_id", userID, "product_id", line.ProductID, "error", err)
			continue
		}
		newQty := line.Qty
		if existing != nil {
			newQty += existing.Quantity
		}
		if err := s.cartRepo.Upsert(&models.CartItem{UserID: userID, ProductID: line.ProductID, Quantity: newQty}); err != nil {
			merged = false
			logger.Warnw("cart_merge_line_failed", "user_id", userID, "product_id", line.ProductID, "error", err)
		}
	}

	if merged {
		if err := s.guestStore.Clear(ctx, token); err != nil {
			logger.Warnw("cart_merge_clear_failed", "user_id", userID, "error", err)
		}
	} else {
		logger.Warnw("cart_merge_partial", "user_id", userID)
	}

	snapshot, err := s.publish(userID)
	if err != nil {
		return snapshot, err
	}
	if !merged {
		return snapshot, ErrCartMergePartial
	}
	return snapshot, nil
}

func (s *CartService) userLines(userID uint) ([]repository.GuestCartLine, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	lines := make([]repository.GuestCartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, repository.GuestCartLine{ProductID: item.ProductID, Qty: item.Quantity})
	}
	return lines, nil
}

// project resolves products for the given lines and builds a snapshot.
func (s *CartService) project(lines []repository.GuestCartLine) (CartSnapshot, error) {
	products := make(map[uint]*models.Product, len(lines))
	for _, line := range lines {
		if _, ok := products[line.ProductID]; ok {
			continue
		}
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return CartSnapshot{}, err
		}
		if product != nil {
			products[line.ProductID] = product
		}
	}
	return ProjectCart(lines, products), nil
}

// publish rebuilds the snapshot and fans it out to watchers.
func (s *CartService) publish(userID uint) (CartSnapshot, error) {
	snapshot, err := s.Snapshot(userID)
	if err != nil {
		return CartSnapshot{}, err
	}
	s.hub.Publish(watch.CartTopic(userID), snapshot)
	return snapshot, nil
}

func (s *CartService) requireActiveProduct(productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}
	return nil
}
