package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/sourdough-shop/models"
)

func TestClampQuantityBounds(t *testing.T) {
	cases := []struct {
		name      string
		requested float64
		available int
		want      int
	}{
		{"within stock", 3, 5, 3},
		{"over stock", 8, 5, 5},
		{"negative", -2, 5, 0},
		{"zero stock", 4, 0, 0},
		{"negative stock", 4, -1, 0},
		{"fractional rounds", 2.6, 5, 3},
		{"exact stock", 5, 5, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampQuantity(tc.requested, tc.available)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0)
			if tc.available >= 0 {
				assert.LessOrEqual(t, got, tc.available)
			}
		})
	}
}

func TestOrderTotal(t *testing.T) {
	catalog := []models.Bread{
		{ID: 1, Name: "Classic", Price: 8},
		{ID: 2, Name: "Olive", Price: 10},
	}

	assert.Equal(t, 0.0, OrderTotal(nil, catalog))
	assert.Equal(t, 0.0, OrderTotal([]models.OrderLine{}, catalog))

	l1 := []models.OrderLine{{BreadID: 1, Quantity: 2}}
	l2 := []models.OrderLine{{BreadID: 2, Quantity: 3}}
	assert.Equal(t, 16.0, OrderTotal(l1, catalog))
	assert.Equal(t, 30.0, OrderTotal(l2, catalog))

	// Additive over disjoint line sets.
	combined := append(append([]models.OrderLine{}, l1...), l2...)
	assert.Equal(t, OrderTotal(l1, catalog)+OrderTotal(l2, catalog), OrderTotal(combined, catalog))

	// Zero quantities and unknown breads contribute nothing.
	noise := []models.OrderLine{
		{BreadID: 1, Quantity: 0},
		{BreadID: 99, Quantity: 4},
	}
	assert.Equal(t, 0.0, OrderTotal(noise, catalog))
}

func TestAvailableBreads(t *testing.T) {
	catalog := []models.Bread{
		{ID: 1, Name: "Classic", Price: 8},
		{ID: 2, Name: "Wheat", Price: 9},
		{ID: 3, Name: "Olive", Price: 10},
	}
	records := []models.InventoryRecord{
		// Inventory order differs from catalog order on purpose.
		{BreadID: 3, Available: true, Quantity: 2},
		{BreadID: 1, Available: true, Quantity: 5},
		{BreadID: 2, Available: false, Quantity: 7},
	}

	got := AvailableBreads(catalog, records)

	// Only available records, in catalog order, and a bread without a
	// record is never available.
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	assert.Empty(t, AvailableBreads(catalog, nil))
}

func TestRemaining(t *testing.T) {
	records := []models.InventoryRecord{
		{BreadID: 1, Available: true, Quantity: 5},
	}

	assert.Equal(t, 5, Remaining(records, 1, 0))
	assert.Equal(t, 2, Remaining(records, 1, 3))
	// Stock shrank under an open draft: transiently negative.
	assert.Equal(t, -2, Remaining(records, 1, 7))
	// No record at all.
	assert.Equal(t, -1, Remaining(records, 2, 1))
}
