// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/neonmart/storefront-backend/internal/models"
	"github.com/neonmart/storefront-backend/internal/utils"
)

// CatalogService manages the product catalog. Products are read-only to the
// cart and order path; only the admin dashboard mutates them.
type CatalogService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Title              string          `json:"title" validate:"required,min=1,max=255"`
	Description        string          `json:"description"`
	Brand              string          `json:"brand" validate:"max=100"`
	Category           string          `json:"category" validate:"max=100"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Rating             decimal.Decimal `json:"rating"`
	Stock              int             `json:"stock" validate:"gte=0"`
	Thumbnail          string          `json:"thumbnail" validate:"max=512"`
	Images             []string        `json:"images,omitempty"`
}

type UpdateProductRequest struct {
	Title              string           `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description        *string          `json:"description,omitempty"`
	Brand              *string          `json:"brand,omitempty"`
	Category           *string          `json:"category,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
	Rating             *decimal.Decimal `json:"rating,omitempty"`
	Stock              *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Thumbnail          *string          `json:"thumbnail,omitempty"`
	Images             []string         `json:"images,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// validateMoneyFields covers the numeric invariants the struct validator
// cannot express over decimals.
func validateMoneyFields(price, discountPercentage, rating decimal.Decimal) error {
	if price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("discountPercentage must be between 0 and 100")
	}
	if rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateMoneyFields(req.Price, req.DiscountPercentage, req.Rating); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Title:              req.Title,
		Description:        req.Description,
		Brand:              req.Brand,
		Category:           req.Category,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Rating:             req.Rating,
		Stock:              req.Stock,
		Thumbnail:          req.Thumbnail,
		Images:             req.Images,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errors.New("price must not be negative")
		}
		updates["price"] = *req.Price
	}
	if req.DiscountPercentage != nil {
		if req.DiscountPercentage.IsNegative() || req.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
			return nil, errors.New("discountPercentage must be between 0 and 100")
		}
		updates["discount_percentage"] = *req.DiscountPercentage
	}
	if req.Rating != nil {
		if req.Rating.IsNegative() || req.Rating.GreaterThan(decimal.NewFromInt(5)) {
			return nil, errors.New("rating must be between 0 and 5")
		}
		updates["rating"] = *req.Rating
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return &product, nil
}

// DeleteProduct is idempotent: deleting an id that does not exist is not an
// error.
func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	if err := s.db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *CatalogService) SearchProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "price", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}
