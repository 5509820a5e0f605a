package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sourdough-shop/live"
	"github.com/yeremiapane/sourdough-shop/models"
	"github.com/yeremiapane/sourdough-shop/services"
	"github.com/yeremiapane/sourdough-shop/sheets"
	"github.com/yeremiapane/sourdough-shop/utils"
)

var (
	ErrUnknownBread   = errors.New("unknown bread")
	ErrNoRecord       = errors.New("no inventory record for this bread")
	ErrUpdateFailed   = errors.New("failed to update inventory")
	ErrRefreshFailed  = errors.New("Failed to load inventory")
	ErrBadPickupDate  = errors.New("pickup_date must be a valid YYYY-MM-DD date")
	ErrNoFieldToPatch = errors.New("nothing to update")
)

type AdminController struct {
	Store  *services.InventoryStore
	Client *sheets.Client
}

func NewAdminController(store *services.InventoryStore, client *sheets.Client) *AdminController {
	return &AdminController{Store: store, Client: client}
}

// adminBread joins one catalog entry with its inventory record (zero state
// when the bread has never been put on sale).
type adminBread struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url"`
}

// GetInventory -> every catalog bread with its current record, for the panel.
func (ac *AdminController) GetInventory(c *gin.Context) {
	records := ac.Store.Snapshot()

	breads := make([]adminBread, 0, len(models.Catalog))
	for _, bread := range models.Catalog {
		row := adminBread{ID: bread.ID, Name: bread.Name, Price: bread.Price}
		if idx := models.FindRecord(records, bread.ID); idx >= 0 {
			row.Available = records[idx].Available
			row.Quantity = records[idx].Quantity
			row.ImageURL = records[idx].ImageURL
		}
		breads = append(breads, row)
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory", gin.H{
		"pickup_date": ac.Store.PickupDate(),
		"breads":      breads,
	})
}

// UpdateInventory -> patch one bread's record and push the full list to the
// sheet. Toggling a never-seen bread available appends a fresh record with
// quantity 0 and an empty image; every other edit patches in place, so a
// bread never gets a second record.
func (ac *AdminController) UpdateInventory(c *gin.Context) {
	breadID, err := strconv.Atoi(c.Param("bread_id"))
	if err != nil || models.BreadByID(breadID) == nil {
		utils.RespondError(c, http.StatusNotFound, ErrUnknownBread)
		return
	}

	type reqBody struct {
		Available *bool    `json:"available"`
		Quantity  *float64 `json:"quantity"`
		ImageURL  *string  `json:"image_url"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Available == nil && req.Quantity == nil && req.ImageURL == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrNoFieldToPatch)
		return
	}

	records := ac.Store.Snapshot()
	idx := models.FindRecord(records, breadID)

	if idx < 0 {
		// A record only springs into existence when the bread is first
		// marked available.
		if req.Available == nil || !*req.Available {
			utils.RespondError(c, http.StatusNotFound, ErrNoRecord)
			return
		}
		records = append(records, models.InventoryRecord{
			BreadID:   breadID,
			Available: true,
			Quantity:  0,
			ImageURL:  "",
		})
		idx = len(records) - 1
	}

	if req.Available != nil {
		records[idx].Available = *req.Available
	}
	if req.Quantity != nil {
		// Same sanitization as the panel input: non-numeric already failed
		// binding, negatives become zero.
		qty := int(*req.Quantity)
		if qty < 0 {
			qty = 0
		}
		records[idx].Quantity = qty
	}
	if req.ImageURL != nil {
		records[idx].ImageURL = *req.ImageURL
	}

	// Optimistic: the panel sees the edit before the sheet confirms it.
	ac.Store.Apply(records)

	if err := ac.Client.UpdateInventory(records); err != nil {
		// Known drift risk: the optimistic list stays; the next successful
		// refresh reconciles against the sheet.
		utils.ErrorLogger.Printf("inventory update failed for bread %d: %v", breadID, err)
		utils.RespondError(c, http.StatusBadGateway, ErrUpdateFailed)
		return
	}

	if err := ac.Store.Refresh(); err != nil {
		utils.ErrorLogger.Printf("post-update refresh failed: %v", err)
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Inventory updated for bread %d", breadID), ac.Store.Snapshot())
}

// SetPickupDate -> shop-wide pickup date, local state only.
func (ac *AdminController) SetPickupDate(c *gin.Context) {
	var req struct {
		PickupDate string `json:"pickup_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := time.Parse("2006-01-02", req.PickupDate); err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrBadPickupDate)
		return
	}

	ac.Store.SetPickupDate(req.PickupDate)
	live.BroadcastPickupDate(req.PickupDate)

	utils.RespondJSON(c, http.StatusOK, "Pickup date updated", gin.H{
		"pickup_date": req.PickupDate,
	})
}

// RefreshInventory -> the panel's "Refresh Inventory" button.
func (ac *AdminController) RefreshInventory(c *gin.Context) {
	if err := ac.Store.Refresh(); err != nil {
		utils.ErrorLogger.Printf("manual refresh failed: %v", err)
		utils.RespondError(c, http.StatusBadGateway, ErrRefreshFailed)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory refreshed", ac.Store.Snapshot())
}
