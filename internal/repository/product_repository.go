// internal/repository/product_repository.go
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ateliermarket/storefront-backend/internal/models"
)

// ErrNotFound is returned when no product matches the given ID.
var ErrNotFound = errors.New("record not found")

type ProductFilter struct {
	// Search matches name, description or category, case-insensitively.
	Search string
}

// ProductRepository is the persistence contract for the product catalog.
// Implementations must treat UpdateFields as a partial update: only the keys
// present in the map are written.
type ProductRepository interface {
	Find(filter ProductFilter) ([]models.Product, error)
	FindByID(id uuid.UUID) (*models.Product, error)
	Create(product *models.Product) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) (*models.Product, error)
	Delete(id uuid.UUID) error
	Search(query string, limit int) ([]models.Product, error)
	CountFeatured() (int64, error)
	ReplaceRelated(id uuid.UUID, relatedIDs []uuid.UUID) (*models.Product, error)
	SetDisplayOrder(id uuid.UUID, order int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// listingOrder is the catalog sort: featured first, then manual rank, then newest.
const listingOrder = "is_featured DESC, display_order ASC, created_at DESC"

func (r *productRepository) Find(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{}).
		Preload("RelatedProducts").
		Preload("Reviews").
		Preload("Reviews.User")

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			term, term, term,
		)
	}

	var products []models.Product
	if err := query.Order(listingOrder).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (r *productRepository) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("RelatedProducts").
		Preload("Reviews").
		Preload("Reviews.User").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (r *productRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if len(fields) > 0 {
		if err := r.db.Model(&product).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return r.FindByID(id)
}

func (r *productRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) Search(query string, limit int) ([]models.Product, error) {
	term := "%" + strings.ToLower(query) + "%"

	var products []models.Product
	err := r.db.Model(&models.Product{}).
		Select("id", "name", "price", "images", "category", "created_at").
		Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			term, term, term,
		).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return products, nil
}

func (r *productRepository) CountFeatured() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("is_featured = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count featured products: %w", err)
	}
	return count, nil
}

func (r *productRepository) ReplaceRelated(id uuid.UUID, relatedIDs []uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	related := make([]models.Product, 0, len(relatedIDs))
	if len(relatedIDs) > 0 {
		if err := r.db.Find(&related, "id IN ?", relatedIDs).Error; err != nil {
			return nil, fmt.Errorf("failed to load related products: %w", err)
		}
	}

	if err := r.db.Model(&product).Association("RelatedProducts").Replace(related); err != nil {
		return nil, fmt.Errorf("failed to replace related products: %w", err)
	}

	return r.FindByID(id)
}

func (r *productRepository) SetDisplayOrder(id uuid.UUID, order int) error {
	result := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		Update("display_order", order)
	if result.Error != nil {
		return fmt.Errorf("failed to update display order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
