package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MenuItemOption is one mutually exclusive purchase variant of an item,
// e.g. a half or full portion, carrying its own price.
type MenuItemOption struct {
	Label string  `json:"label" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

// MenuItem is a sellable product. Price is nil when the item is sold
// through Options; DisplayPrice may then hold a combined label like
// "৩০/৫০" which is never used for purchase pricing.
type MenuItem struct {
	gorm.Model
	Name         string                              `json:"name" binding:"required"`
	Description  string                              `json:"description"`
	Category     string                              `json:"category" binding:"required"`
	Price        *float64                            `json:"price"`
	DisplayPrice string                              `json:"displayPrice"`
	Options      datatypes.JSONSlice[MenuItemOption] `json:"options"`
	Image        string                              `json:"image"`
	IsSpicy      bool                                `json:"isSpicy"`
	IsBestSeller bool                                `json:"isBestSeller"`
}

type Category struct {
	gorm.Model
	Name string `json:"name" binding:"required" gorm:"uniqueIndex"`
}

// HasOptions reports whether the item must be purchased through a variant.
func (m MenuItem) HasOptions() bool {
	return len(m.Options) > 0
}

// OptionByLabel finds the purchase variant with the given label.
func (m MenuItem) OptionByLabel(label string) (MenuItemOption, bool) {
	for _, option := range m.Options {
		if option.Label == label {
			return option, true
		}
	}
	return MenuItemOption{}, false
}
