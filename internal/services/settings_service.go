// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/neonmart/storefront-backend/internal/models"
)

// SettingsService owns the singleton footer record shown site-wide.
type SettingsService struct {
	db *gorm.DB
}

type UpdateFooterRequest struct {
	Bio     string `json:"bio"`
	Profile string `json:"profile" validate:"max=512"`
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) GetFooter() (*models.FooterSettings, error) {
	var footer models.FooterSettings
	if err := s.db.Order("created_at ASC").First(&footer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Seeding creates the record; an empty one is still a valid
			// answer if seeding was skipped.
			return &models.FooterSettings{}, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &footer, nil
}

func (s *SettingsService) UpdateFooter(req *UpdateFooterRequest) (*models.FooterSettings, error) {
	var footer models.FooterSettings
	err := s.db.Order("created_at ASC").First(&footer).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	footer.Bio = req.Bio
	footer.Profile = req.Profile

	if err := s.db.Save(&footer).Error; err != nil {
		return nil, fmt.Errorf("failed to save footer settings: %w", err)
	}

	return &footer, nil
}
