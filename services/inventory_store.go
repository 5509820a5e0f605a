package services

import (
	"sync"
	"time"

	"github.com/yeremiapane/sourdough-shop/live"
	"github.com/yeremiapane/sourdough-shop/models"
	"github.com/yeremiapane/sourdough-shop/sheets"
	"github.com/yeremiapane/sourdough-shop/utils"
)

// InventoryStore owns the last-fetched inventory list and the shop-wide
// pickup date. The sheet stays the source of truth: every admin mutation is
// followed by a refresh, and consumers only ever see snapshot copies.
type InventoryStore struct {
	Client   *sheets.Client
	Interval time.Duration

	mu         sync.Mutex
	records    []models.InventoryRecord
	lastErr    error
	refreshing bool
	pickupDate string

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewInventoryStore(client *sheets.Client, interval time.Duration) *InventoryStore {
	return &InventoryStore{
		Client:   client,
		Interval: interval,
		// Pickup defaults to tomorrow until the admin sets it.
		pickupDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		stopChan:   make(chan struct{}),
	}
}

// Refresh fetches the full inventory from the sheet. On success the held list
// is replaced wholesale and the error flag cleared; on failure the previous
// list stays usable (stale-but-available) and the error is recorded.
func (s *InventoryStore) Refresh() error {
	s.mu.Lock()
	s.refreshing = true
	s.mu.Unlock()

	records, err := s.Client.GetInventory()

	s.mu.Lock()
	s.refreshing = false
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.records = records
	s.lastErr = nil
	snapshot := models.CloneRecords(records)
	s.mu.Unlock()

	live.BroadcastInventoryUpdate(snapshot)
	return nil
}

// Start launches the periodic re-sync. A tick is skipped while a refresh is
// still in flight, so the store never runs two fetches at once.
func (s *InventoryStore) Start() {
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.tryRefresh()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop tears the re-sync loop down. Safe to call more than once.
func (s *InventoryStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

func (s *InventoryStore) tryRefresh() {
	s.mu.Lock()
	busy := s.refreshing
	s.mu.Unlock()
	if busy {
		return
	}
	if err := s.Refresh(); err != nil {
		utils.ErrorLogger.Printf("inventory auto refresh failed: %v", err)
	}
}

// Snapshot returns a copy of the held record list.
func (s *InventoryStore) Snapshot() []models.InventoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneRecords(s.records)
}

// LastError reports the outcome of the most recent refresh.
func (s *InventoryStore) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Apply installs an optimistically edited list without touching the sheet.
// The admin mutation path calls this before UpdateInventory so the panel
// reflects the edit immediately.
func (s *InventoryStore) Apply(records []models.InventoryRecord) {
	snapshot := models.CloneRecords(records)
	s.mu.Lock()
	s.records = snapshot
	s.mu.Unlock()
}

func (s *InventoryStore) PickupDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pickupDate
}

// SetPickupDate stores the shop-wide pickup date. The date is local state
// only; it is never sent through the sheets client.
func (s *InventoryStore) SetPickupDate(date string) {
	s.mu.Lock()
	s.pickupDate = date
	s.mu.Unlock()
}
