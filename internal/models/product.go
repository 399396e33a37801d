// internal/models/product.go
package models

import (
	"encoding/json"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Title              string          `json:"title" gorm:"size:255;not null"`
	Description        string          `json:"description" gorm:"type:text"`
	Brand              string          `json:"brand" gorm:"size:100"`
	Category           string          `json:"category" gorm:"size:100;index"`
	Price              decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage" gorm:"type:decimal(5,2);default:0"`
	Rating             decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);default:0"`
	Stock              int             `json:"stock" gorm:"default:0"`
	Thumbnail          string          `json:"thumbnail" gorm:"size:512"`
	Images             pq.StringArray  `json:"images" gorm:"type:text[]"`
}

// ImageURLs returns the gallery for display, falling back to the thumbnail
// when no gallery images were provided.
func (p *Product) ImageURLs() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Thumbnail != "" {
		return []string{p.Thumbnail}
	}
	return []string{}
}

// MarshalJSON serves the display gallery in the images field, so thumbnail
// fallback happens once here instead of in every consumer.
func (p Product) MarshalJSON() ([]byte, error) {
	type productAlias Product
	return json.Marshal(struct {
		productAlias
		Images []string `json:"images"`
	}{
		productAlias: productAlias(p),
		Images:       p.ImageURLs(),
	})
}
