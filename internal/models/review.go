// internal/models/review.go
package models

type Review struct {
	BaseModel
	Name    string `json:"name" gorm:"size:255;not null"`
	Comment string `json:"comment" gorm:"type:text;not null"`
	Rating  int    `json:"rating" gorm:"not null"`
	Liked   bool   `json:"like" gorm:"default:false"`
}

// FooterSettings is the single site-wide footer record edited from the admin
// dashboard.
type FooterSettings struct {
	BaseModel
	Bio     string `json:"bio" gorm:"type:text"`
	Profile string `json:"profile" gorm:"size:512"`
}
