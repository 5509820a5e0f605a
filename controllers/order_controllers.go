package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeremiapane/sourdough-shop/live"
	"github.com/yeremiapane/sourdough-shop/models"
	"github.com/yeremiapane/sourdough-shop/services"
	"github.com/yeremiapane/sourdough-shop/sheets"
	"github.com/yeremiapane/sourdough-shop/utils"
)

// Validation messages shown on the order form, checked in this order.
var (
	ErrNameRequired  = errors.New("Please enter your name")
	ErrPhoneRequired = errors.New("Please enter your phone number")
	ErrEmptyOrder    = errors.New("Please select at least one bread option")
	ErrSubmitFailed  = errors.New("There was an error submitting your order. Please try again.")
)

type OrderController struct {
	Store  *services.InventoryStore
	Client *sheets.Client
}

func NewOrderController(store *services.InventoryStore, client *sheets.Client) *OrderController {
	return &OrderController{Store: store, Client: client}
}

// CreateOrder -> validate, clamp against current stock, send to the sheet.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type lineReq struct {
		BreadID  int     `json:"breadId"`
		Quantity float64 `json:"quantity"`
	}
	type reqBody struct {
		Name   string    `json:"name"`
		Phone  string    `json:"phone"`
		Orders []lineReq `json:"orders"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// The three form checks, short-circuiting on the first failure.
	if strings.TrimSpace(body.Name) == "" {
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrNameRequired)
		return
	}
	if strings.TrimSpace(body.Phone) == "" {
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrPhoneRequired)
		return
	}

	records := oc.Store.Snapshot()

	// Re-clamp every requested quantity against the stock we hold right now.
	// Unknown or unavailable breads clamp to zero.
	var lines []models.OrderLine
	for _, line := range body.Orders {
		if models.BreadByID(line.BreadID) == nil {
			continue
		}
		available := 0
		if idx := models.FindRecord(records, line.BreadID); idx >= 0 && records[idx].Available {
			available = records[idx].Quantity
		}
		qty := services.ClampQuantity(line.Quantity, available)
		if qty > 0 {
			lines = append(lines, models.OrderLine{BreadID: line.BreadID, Quantity: qty})
		}
	}

	if len(lines) == 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrEmptyOrder)
		return
	}

	order := models.Order{
		Reference:  uuid.NewString(),
		Name:       body.Name,
		Phone:      body.Phone,
		Orders:     lines,
		PickupDate: oc.Store.PickupDate(),
		Total:      services.OrderTotal(lines, models.Catalog),
		Timestamp:  models.NewTimestamp(time.Now()),
	}

	if err := oc.Client.SubmitOrder(order); err != nil {
		utils.ErrorLogger.Printf("order submit failed: %v", err)
		utils.RespondError(c, http.StatusBadGateway, ErrSubmitFailed)
		return
	}

	// Reconcile stock with whatever the sheet recorded. Best effort, the
	// order itself already went through.
	go func() {
		if err := oc.Store.Refresh(); err != nil {
			utils.ErrorLogger.Printf("post-order refresh failed: %v", err)
		}
	}()
	live.BroadcastOrderReceived(order.Reference)

	utils.RespondJSON(c, http.StatusCreated, "Order confirmed", gin.H{
		"reference":   order.Reference,
		"phone":       order.Phone,
		"pickup_date": order.PickupDate,
		"total":       order.Total,
	})
}
