package service

import (
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLineView is one projected cart line with catalog data joined in.
type CartLineView struct {
	ProductID uint         `json:"product_id"`
	Slug      string       `json:"slug"`
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	ImageURL  string       `json:"image_url"`
	UnitPrice models.Money `json:"unit_price"`
	Quantity  int          `json:"quantity"`
	LineTotal models.Money `json:"line_total"`
}

// CartSnapshot is a full view of a cart at one point in time. Watchers
// always receive whole snapshots, never deltas.
type CartSnapshot struct {
	Items         []CartLineView `json:"items"`
	Subtotal      models.Money   `json:"subtotal"`
	TotalQuantity int            `json:"total_quantity"`
}

// ProjectCart joins raw cart lines against the catalog. Lines whose
// product is missing or inactive are dropped rather than surfaced as
// broken entries. Line order follows the input.
func ProjectCart(lines []repository.GuestCartLine, products map[uint]*models.Product) CartSnapshot {
	snapshot := CartSnapshot{Items: make([]CartLineView, 0, len(lines))}
	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Qty <= 0 {
			continue
		}
		product, ok := products[line.ProductID]
		if !ok || product == nil || !product.IsActive {
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Qty)))
		snapshot.Items = append(snapshot.Items, CartLineView{
			ProductID: product.ID,
			Slug:      product.Slug,
			Name:      product.Name,
			Category:  product.Category,
			ImageURL:  product.ImageURL,
			UnitPrice: product.Price,
			Quantity:  line.Qty,
			LineTotal: models.NewMoneyFromDecimal(lineTotal),
		})
		subtotal = subtotal.Add(lineTotal)
		snapshot.TotalQuantity += line.Qty
	}
	snapshot.Subtotal = models.NewMoneyFromDecimal(subtotal)
	return snapshot
}
