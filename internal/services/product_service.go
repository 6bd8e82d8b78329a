// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/ateliermarket/storefront-backend/internal/models"
	"github.com/ateliermarket/storefront-backend/internal/repository"
	"github.com/ateliermarket/storefront-backend/internal/utils"
)

// quickSearchLimit caps the lightweight search used by the storefront's
// search-as-you-type box.
const quickSearchLimit = 12

type ProductService struct {
	repo     repository.ProductRepository
	currency *CurrencyService
	images   *ImageService
}

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Currency      string   `json:"currency,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsFeatured    bool     `json:"is_featured"`
}

// UpdateProductRequest is an explicit patch: only fields present in the
// payload are applied. The currency describes the submitted price, not a
// stored attribute.
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsFeatured    *bool    `json:"is_featured,omitempty"`
	DisplayOrder  *int     `json:"order,omitempty"`
}

// ProductSummary is the reduced projection returned by quick search.
type ProductSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Images   []string  `json:"images"`
	Category string    `json:"category"`
}

type FeaturedAssignment struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
}

func NewProductService(repo repository.ProductRepository, currency *CurrencyService, images *ImageService) *ProductService {
	return &ProductService{
		repo:     repo,
		currency: currency,
		images:   images,
	}
}

// ListProducts returns the full catalog, optionally filtered by a
// case-insensitive substring over name, description and category. Prices are
// converted to the requested currency for display only.
func (s *ProductService) ListProducts(search, currency string) ([]models.Product, error) {
	products, err := s.repo.Find(repository.ProductFilter{Search: search})
	if err != nil {
		return nil, err
	}

	for i := range products {
		if err := s.convertForDisplay(&products[i], currency); err != nil {
			return nil, err
		}
	}

	return products, nil
}

func (s *ProductService) GetProduct(id uuid.UUID, currency string) (*models.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.convertForDisplay(product, currency); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailedError{Fields: utils.GetFieldErrors(err)}
	}

	images, err := s.images.HandleImages(req.Images)
	if err != nil {
		return nil, err
	}

	// Prices are persisted in the canonical currency regardless of what the
	// client submitted.
	price, err := s.toCanonical(req.Price, req.Currency)
	if err != nil {
		return nil, err
	}

	var originalPrice *float64
	if req.OriginalPrice != nil {
		converted, err := s.toCanonical(*req.OriginalPrice, req.Currency)
		if err != nil {
			return nil, err
		}
		originalPrice = &converted
	}

	displayOrder := 0
	if req.IsFeatured {
		// Featured products append to the end of the featured ranking.
		count, err := s.repo.CountFeatured()
		if err != nil {
			return nil, err
		}
		displayOrder = int(count)
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         price,
		OriginalPrice: originalPrice,
		Images:        pq.StringArray(images),
		IsFeatured:    req.IsFeatured,
		DisplayOrder:  displayOrder,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies only the fields present in the patch. It deliberately
// does not re-run full create validation; a submitted price is converted from
// the patch's currency and submitted images are re-validated.
func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	fields := make(map[string]interface{})

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}

	if req.Price != nil {
		price, err := s.toCanonical(*req.Price, req.Currency)
		if err != nil {
			return nil, err
		}
		fields["price"] = price
	}
	if req.OriginalPrice != nil {
		originalPrice, err := s.toCanonical(*req.OriginalPrice, req.Currency)
		if err != nil {
			return nil, err
		}
		fields["original_price"] = originalPrice
	}

	if req.Images != nil {
		images, err := s.images.HandleImages(req.Images)
		if err != nil {
			return nil, err
		}
		fields["images"] = pq.StringArray(images)
	}

	product, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// SearchProducts is the quick-search variant: reduced projection, capped
// result count, newest first. An empty query yields an empty list, not an
// error.
func (s *ProductService) SearchProducts(query, currency string) ([]ProductSummary, error) {
	if query == "" {
		return []ProductSummary{}, nil
	}

	products, err := s.repo.Search(query, quickSearchLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		price := p.Price
		if currency != "" {
			price, err = s.currency.Convert(p.Price, s.currency.Canonical(), currency)
			if err != nil {
				return nil, err
			}
		}
		summaries = append(summaries, ProductSummary{
			ID:       p.ID,
			Name:     p.Name,
			Price:    price,
			Images:   []string(p.Images),
			Category: p.Category,
		})
	}

	return summaries, nil
}

// SetRelatedProducts replaces the whole related set; it is not merged with
// the existing one.
func (s *ProductService) SetRelatedProducts(id uuid.UUID, relatedIDs []uuid.UUID) (*models.Product, error) {
	product, err := s.repo.ReplaceRelated(id, relatedIDs)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// ReorderFeatured applies each assignment as an independent write. There is
// no cross-item atomicity: a missing ID does not roll back assignments that
// already landed.
func (s *ProductService) ReorderFeatured(assignments []FeaturedAssignment) error {
	var group errgroup.Group

	for _, assignment := range assignments {
		a := assignment
		group.Go(func() error {
			if err := s.repo.SetDisplayOrder(a.ID, a.Order); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, a.ID)
				}
				return err
			}
			return nil
		})
	}

	return group.Wait()
}

// convertForDisplay rewrites the product's prices into the requested currency.
// Storage stays canonical; this only shapes the response.
func (s *ProductService) convertForDisplay(product *models.Product, currency string) error {
	if currency == "" || currency == s.currency.Canonical() {
		return nil
	}

	price, err := s.currency.Convert(product.Price, s.currency.Canonical(), currency)
	if err != nil {
		return err
	}
	product.Price = price

	if product.OriginalPrice != nil {
		originalPrice, err := s.currency.Convert(*product.OriginalPrice, s.currency.Canonical(), currency)
		if err != nil {
			return err
		}
		product.OriginalPrice = &originalPrice
	}

	return nil
}

// toCanonical converts a submitted amount into the storage currency. An empty
// code means the client already submitted canonical units.
func (s *ProductService) toCanonical(amount float64, code string) (float64, error) {
	if code == "" {
		code = s.currency.Canonical()
	}
	return s.currency.Convert(amount, code, s.currency.Canonical())
}
