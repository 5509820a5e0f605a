package services

import (
	"math"

	"github.com/yeremiapane/sourdough-shop/models"
)

// AvailableBreads returns the catalog breads whose inventory record is marked
// available, in catalog order. A bread with no record is never available.
func AvailableBreads(catalog []models.Bread, records []models.InventoryRecord) []models.Bread {
	var out []models.Bread
	for _, bread := range catalog {
		idx := models.FindRecord(records, bread.ID)
		if idx >= 0 && records[idx].Available {
			out = append(out, bread)
		}
	}
	return out
}

// Remaining is the stock left for a bread after subtracting the draft
// quantity. It can go negative when stock shrinks under an open draft; the
// submission path clamps it back through ClampQuantity.
func Remaining(records []models.InventoryRecord, breadID, draftQuantity int) int {
	idx := models.FindRecord(records, breadID)
	if idx < 0 {
		return -draftQuantity
	}
	return records[idx].Quantity - draftQuantity
}

// ClampQuantity sanitizes a requested quantity against available stock:
// min(max(0, round(requested)), available). This is the sole sanitization
// rule for order quantities.
func ClampQuantity(requested float64, available int) int {
	q := int(math.Round(requested))
	if q < 0 {
		q = 0
	}
	if available < 0 {
		available = 0
	}
	if q > available {
		q = available
	}
	return q
}

// OrderTotal sums price times quantity over lines with a positive quantity.
// Lines referencing unknown breads contribute nothing.
func OrderTotal(lines []models.OrderLine, catalog []models.Bread) float64 {
	var total float64
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		for _, bread := range catalog {
			if bread.ID == line.BreadID {
				total += bread.Price * float64(line.Quantity)
				break
			}
		}
	}
	return total
}
