package models

// InventoryRecord is the per-bread availability state stored in the sheet.
// Records are keyed by BreadID and never hard-deleted; marking a bread
// unavailable keeps the record with Available=false.
type InventoryRecord struct {
	BreadID   int    `json:"breadId"`
	Available bool   `json:"available"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"imageUrl"`
}

// FindRecord returns the index of the record for breadID, -1 when absent.
func FindRecord(records []InventoryRecord, breadID int) int {
	for i := range records {
		if records[i].BreadID == breadID {
			return i
		}
	}
	return -1
}

// CloneRecords copies a record list so callers can hand out snapshots
// without sharing the backing array.
func CloneRecords(records []InventoryRecord) []InventoryRecord {
	out := make([]InventoryRecord, len(records))
	copy(out, records)
	return out
}
