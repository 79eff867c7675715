package service

import (
	"fmt"

	"github.com/aquatech-store/internal/constants"
	"github.com/aquatech-store/internal/models"
)

const recommendationLimit = 3

// recommendationRule maps a category present in the cart to a category
// worth suggesting alongside it. Rules are checked in order and the
// first match wins.
type recommendationRule struct {
	TargetCategory    string
	RecommendCategory string
	Reason            string
}

var recommendationRules = []recommendationRule{
	{
		TargetCategory:    constants.CategoryPurifiers,
		RecommendCategory: constants.CategoryServices,
		Reason:            "Protect your new purifier with an annual maintenance plan.",
	},
	{
		TargetCategory:    constants.CategoryFilters,
		RecommendCategory: constants.CategoryServices,
		Reason:            "Need help installing? Book a certified technician for professional setup.",
	},
	{
		TargetCategory:    constants.CategoryCommercial,
		RecommendCategory: constants.CategoryServices,
		Reason:            "Keep your business running with priority office support.",
	},
}

// Recommendation is a titled, reasoned shortlist of catalog entries.
type Recommendation struct {
	Title  string           `json:"title"`
	Reason string           `json:"reason"`
	Items  []models.Product `json:"items"`
}

// RecommendService derives suggestions from the cart contents using the
// ordered category rules above.
type RecommendService struct {
	catalog *CatalogService
}

// NewRecommendService creates a recommendation service.
func NewRecommendService(catalog *CatalogService) *RecommendService {
	return &RecommendService{catalog: catalog}
}

// ForCart produces a recommendation for a projected cart. An empty cart
// gets the cold-start shortlist of purifiers. A cart that matches no
// rule falls back to replacement filters, and if the rule's category
// would leave nothing to show after excluding what is already in the
// cart, accessories fill in.
func (s *RecommendService) ForCart(snapshot CartSnapshot) Recommendation {
	catalog := s.catalog.Snapshot()
	all := append(append([]models.Product{}, catalog.Products...), catalog.Services...)
	if len(all) == 0 {
		return Recommendation{}
	}

	cartCategories := make(map[string]bool, len(snapshot.Items))
	inCart := make(map[uint]bool, len(snapshot.Items))
	for _, line := range snapshot.Items {
		cartCategories[line.Category] = true
		inCart[line.ProductID] = true
	}

	var active *recommendationRule
	for i := range recommendationRules {
		if cartCategories[recommendationRules[i].TargetCategory] {
			active = &recommendationRules[i]
			break
		}
	}

	if active == nil {
		if len(snapshot.Items) == 0 {
			return Recommendation{
				Title:  "Best Sellers for Your Home",
				Reason: "Top-rated purifiers designed for Tamil Nadu's water conditions.",
				Items:  takeByCategory(all, constants.CategoryPurifiers, recommendationLimit, nil),
			}
		}
		active = &recommendationRule{
			TargetCategory:    "Items",
			RecommendCategory: constants.CategoryFilters,
			Reason:            "Stock up on essential replacement filters to ensure purity.",
		}
	}

	suggested := takeByCategory(all, active.RecommendCategory, recommendationLimit, inCart)
	if len(suggested) == 0 {
		return Recommendation{
			Title:  "Essential Accessories",
			Reason: "Complete your setup with these trending additions.",
			Items:  takeByCategory(all, constants.CategoryAccessories, recommendationLimit, nil),
		}
	}

	title := "Picks for You"
	if len(snapshot.Items) > 0 {
		title = fmt.Sprintf("Recommended for your %s", active.TargetCategory)
	}
	return Recommendation{
		Title:  title,
		Reason: active.Reason,
		Items:  suggested,
	}
}

// takeByCategory returns up to limit products from one category,
// skipping ids in exclude.
func takeByCategory(all []models.Product, category string, limit int, exclude map[uint]bool) []models.Product {
	out := make([]models.Product, 0, limit)
	for _, item := range all {
		if item.Category != category {
			continue
		}
		if exclude != nil && exclude[item.ID] {
			continue
		}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
