// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neonmart/storefront-backend/internal/models"
	"github.com/neonmart/storefront-backend/internal/utils"
)

// ReviewService manages customer reviews. Reviews are append-only except for
// the like toggle.
type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Comment string `json:"comment" validate:"required,min=1"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) ListReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Order("created_at ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) CreateReview(req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	review := &models.Review{
		Name:    req.Name,
		Comment: req.Comment,
		Rating:  req.Rating,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// ToggleLike flips the review's like flag and returns the updated record.
func (s *ReviewService) ToggleLike(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	liked := !review.Liked
	if err := s.db.Model(&review).Update("liked", liked).Error; err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	review.Liked = liked
	return &review, nil
}
