package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrOptionRequired is returned when an item with priced options is
	// added without choosing one. The display price of such items is not
	// a purchasable price, so there is nothing sane to default to.
	ErrOptionRequired = errors.New("item has options, an option must be selected")
	ErrUnknownOption  = errors.New("selected option does not exist on this item")
	ErrNoUnitPrice    = errors.New("item has no numeric price")
)

// CartLine is one entry of the in-progress order. Identity is the
// (ItemID, SelectedOptionLabel) pair; the same item added with another
// option label forms a separate line. FinalPrice is resolved once when
// the line is created and never recalculated, so later catalog edits do
// not affect lines already in the cart.
type CartLine struct {
	gorm.Model
	CartID              int     `json:"cartId"`
	ItemID              uint    `json:"itemId"`
	Name                string  `json:"name"`
	SelectedOptionLabel string  `json:"selectedOptionLabel"`
	FinalPrice          float64 `json:"finalPrice"`
	Quantity            int     `json:"quantity"`
}

// Cart holds the shopper's in-progress selections, one cart per guest
// session. Line order is kept for display only.
type Cart struct {
	gorm.Model
	SessionID string     `json:"sessionId" gorm:"uniqueIndex"`
	Lines     []CartLine `json:"lines" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartTotals struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// resolveUnitPrice picks the concrete numeric price for a selection.
// Items with options require a matching label; items without options
// require a scalar price and accept no label.
func resolveUnitPrice(item MenuItem, optionLabel string) (float64, error) {
	if item.HasOptions() {
		if optionLabel == "" {
			return 0, ErrOptionRequired
		}
		option, ok := item.OptionByLabel(optionLabel)
		if !ok {
			return 0, ErrUnknownOption
		}
		return option.Price, nil
	}
	if optionLabel != "" {
		return 0, ErrUnknownOption
	}
	if item.Price == nil {
		return 0, ErrNoUnitPrice
	}
	return *item.Price, nil
}

// AddLine adds one unit of the item to the cart. When a line with the
// same (ItemID, SelectedOptionLabel) already exists its quantity grows
// by one and its price stays untouched; otherwise a new line with
// quantity 1 is appended. The returned line is the one that changed.
func (c *Cart) AddLine(item MenuItem, optionLabel string) (*CartLine, error) {
	unitPrice, err := resolveUnitPrice(item, optionLabel)
	if err != nil {
		return nil, err
	}

	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID && c.Lines[i].SelectedOptionLabel == optionLabel {
			c.Lines[i].Quantity++
			return &c.Lines[i], nil
		}
	}

	c.Lines = append(c.Lines, CartLine{
		CartID:              int(c.ID),
		ItemID:              item.ID,
		Name:                item.Name,
		SelectedOptionLabel: optionLabel,
		FinalPrice:          unitPrice,
		Quantity:            1,
	})
	return &c.Lines[len(c.Lines)-1], nil
}

// AdjustQuantity shifts the quantity of the matching line by delta,
// clamped at 1. Decrementing never removes a line; removal is only done
// through RemoveLine. Returns nil when no line matches.
func (c *Cart) AdjustQuantity(itemID uint, optionLabel string, delta int) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID && c.Lines[i].SelectedOptionLabel == optionLabel {
			c.Lines[i].Quantity = max(1, c.Lines[i].Quantity+delta)
			return &c.Lines[i]
		}
	}
	return nil
}

// RemoveLine deletes the matching line entirely and returns it, or nil
// when the cart has no such line.
func (c *Cart) RemoveLine(itemID uint, optionLabel string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID && c.Lines[i].SelectedOptionLabel == optionLabel {
			removed := c.Lines[i]
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return &removed
		}
	}
	return nil
}

// Totals recomputes the unit count and bill total over all lines.
func (c Cart) Totals() CartTotals {
	var totals CartTotals
	for _, line := range c.Lines {
		totals.Count += line.Quantity
		totals.Total += line.FinalPrice * float64(line.Quantity)
	}
	return totals
}

// Clear empties the cart. Called only after a booking was persisted.
func (c *Cart) Clear() {
	c.Lines = nil
}
