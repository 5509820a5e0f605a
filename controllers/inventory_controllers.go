package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sourdough-shop/models"
	"github.com/yeremiapane/sourdough-shop/services"
	"github.com/yeremiapane/sourdough-shop/utils"
)

type InventoryController struct {
	Store *services.InventoryStore
}

func NewInventoryController(store *services.InventoryStore) *InventoryController {
	return &InventoryController{Store: store}
}

// storefrontBread is one orderable bread as the order form renders it.
type storefrontBread struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url"`
}

// GetStorefront -> available breads with stock plus the pickup date.
func (ic *InventoryController) GetStorefront(c *gin.Context) {
	records := ic.Store.Snapshot()

	if len(records) == 0 && ic.Store.LastError() != nil {
		utils.ErrorLogger.Printf("storefront unavailable: %v", ic.Store.LastError())
		utils.RespondError(c, http.StatusBadGateway, ErrRefreshFailed)
		return
	}

	breads := make([]storefrontBread, 0)
	for _, bread := range services.AvailableBreads(models.Catalog, records) {
		idx := models.FindRecord(records, bread.ID)
		breads = append(breads, storefrontBread{
			ID:       bread.ID,
			Name:     bread.Name,
			Price:    bread.Price,
			Quantity: records[idx].Quantity,
			ImageURL: records[idx].ImageURL,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Storefront inventory", gin.H{
		"pickup_date": ic.Store.PickupDate(),
		"breads":      breads,
	})
}
