package models

import "gorm.io/gorm"

// HeroImage is one slide of the storefront hero carousel. Rotation
// happens client-side; the API only manages the ordered list.
type HeroImage struct {
	gorm.Model
	Url      string `json:"url" binding:"required"`
	Position int    `json:"position"`
}
