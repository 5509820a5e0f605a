package models

import "time"

// OrderLine is one bread/quantity pair inside an order. Draft lines with
// quantity 0 are dropped before submission.
type OrderLine struct {
	BreadID  int `json:"breadId"`
	Quantity int `json:"quantity"`
}

// Order is a finalized customer order as sent to the sheet. It is built once
// at submission time and never mutated afterwards.
type Order struct {
	Reference  string      `json:"reference"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	Orders     []OrderLine `json:"orders"`
	PickupDate string      `json:"pickupDate"`
	Total      float64     `json:"total"`
	Timestamp  string      `json:"timestamp"`
}

// NewTimestamp renders the submission time the way the sheet expects it.
func NewTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
