package repository

import (
	"errors"
	"strings"

	"github.com/aquatech-store/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the catalog data access interface.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	UpsertBySlug(product *models.Product) error
	UpdateImageURL(slug, imageURL string) error
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a catalog repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List returns catalog entries matching the filter, most relevant first.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})
	if kind := strings.TrimSpace(filter.Kind); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var products []models.Product
	if err := query.Order("sort_order DESC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID fetches one entry. Missing rows return nil, nil.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug fetches one entry by slug. Missing rows return nil, nil.
func (r *GormProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts an entry.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves an entry.
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// UpsertBySlug inserts or merges by slug. Existing rows keep their
// primary key and created_at; everything else is overwritten.
func (r *GormProductRepository) UpsertBySlug(product *models.Product) error {
	if product == nil {
		return nil
	}
	existing, err := r.GetBySlug(product.Slug)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(product).Error
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	return r.db.Save(product).Error
}

// UpdateImageURL back-fills one entry's image URL.
func (r *GormProductRepository) UpdateImageURL(slug, imageURL string) error {
	return r.db.Model(&models.Product{}).Where("slug = ?", slug).Update("image_url", imageURL).Error
}
