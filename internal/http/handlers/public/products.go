package public

import (
	"github.com/aquatech-store/internal/http/response"
	"github.com/aquatech-store/internal/repository"
	"github.com/aquatech-store/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns the full catalog split into products and services.
func (h *Handler) GetCatalog(c *gin.Context) {
	response.Success(c, h.CatalogService.Snapshot())
}

// ListProducts returns catalog entries filtered by kind, category and
// free-text search.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		Kind:     c.Query("kind"),
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
	items, fallback, err := h.CatalogService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "catalog unavailable", err)
		return
	}
	response.Success(c, gin.H{
		"items":    items,
		"fallback": fallback,
	})
}

// GetProduct returns one catalog entry by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")
	product, err := h.CatalogService.GetBySlug(slug)
	if err != nil {
		if err == service.ErrProductNotFound {
			response.NotFound(c, "product not found")
			return
		}
		respondError(c, response.CodeInternal, "catalog unavailable", err)
		return
	}
	response.Success(c, product)
}
