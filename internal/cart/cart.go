// Package cart implements order-line normalization. Lines with the same
// menu item and variant are always merged into one line with a summed
// quantity, never duplicated.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/krafty-kitchen/api/internal/enum"
	"github.com/krafty-kitchen/api/internal/model"
)

// Add puts one unit of item at the given variant into lines. An existing
// line for the same item and variant gets its quantity bumped; otherwise
// a new line is appended with the variant's current price. Asking for the
// Half variant of an item without a half price leaves lines unchanged.
func Add(lines []model.CartItem, item model.MenuItem, variant string) []model.CartItem {
	for i := range lines {
		if lines[i].MenuItemID == item.ID && lines[i].Variant == variant {
			lines[i].Quantity++
			return lines
		}
	}

	price := item.PriceFull
	if variant == enum.VariantHalf {
		if item.PriceHalf == nil {
			return lines
		}
		price = *item.PriceHalf
	}

	return append(lines, model.CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Variant:    variant,
		Price:      price,
		Quantity:   1,
	})
}

// Remove takes one unit of the given item and variant out of lines,
// dropping the line entirely when its quantity reaches zero. Unknown
// lines are a no-op.
func Remove(lines []model.CartItem, menuItemID, variant string) []model.CartItem {
	for i := range lines {
		if lines[i].MenuItemID != menuItemID || lines[i].Variant != variant {
			continue
		}
		if lines[i].Quantity > 1 {
			lines[i].Quantity--
			return lines
		}
		return append(lines[:i], lines[i+1:]...)
	}
	return lines
}

// Merge normalizes arbitrary submitted lines: duplicates of the same item
// and variant collapse into the first occurrence with quantities summed.
// Name and price come from the first occurrence.
func Merge(lines []model.CartItem) []model.CartItem {
	var merged []model.CartItem
	for _, line := range lines {
		found := false
		for i := range merged {
			if merged[i].MenuItemID == line.MenuItemID && merged[i].Variant == line.Variant {
				merged[i].Quantity += line.Quantity
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, line)
		}
	}
	return merged
}

// Total sums price times quantity over all lines.
func Total(lines []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Count sums the quantities over all lines.
func Count(lines []model.CartItem) int {
	n := 0
	for _, line := range lines {
		n += line.Quantity
	}
	return n
}
