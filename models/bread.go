package models

// Bread is one product definition. The catalog is compiled in and never
// persisted; only availability lives in the sheet.
type Bread struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog lists every bread the shop can bake, in display order.
var Catalog = []Bread{
	{ID: 1, Name: "Classic Sourdough", Price: 8},
	{ID: 2, Name: "Whole Wheat Sourdough", Price: 9},
	{ID: 3, Name: "Rosemary Garlic Sourdough", Price: 10},
	{ID: 4, Name: "Olive Sourdough", Price: 10},
	{ID: 5, Name: "Cranberry Walnut Sourdough", Price: 11},
	{ID: 6, Name: "Jalapeno Cheddar Sourdough", Price: 11},
}

// BreadByID looks a bread up in the catalog, nil when unknown.
func BreadByID(id int) *Bread {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
