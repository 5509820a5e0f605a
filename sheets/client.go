package sheets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/yeremiapane/sourdough-shop/models"
)

// The sheet script multiplexes every operation over one POST endpoint and
// dispatches on the "type" field of the body.
const (
	typeGetInventory    = "getInventory"
	typeUpdateInventory = "updateInventory"
	typeOrder           = "order"
)

// TransportError wraps a failed request or an unparseable response. Callers
// log it and surface a generic message; there is no retry policy.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sheets %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a transport failure against the sheet.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Client talks to the spreadsheet-backed store. The endpoint URL is fixed at
// construction; there is no mechanism to change it at runtime.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: http.DefaultClient,
	}
}

type inventoryResponse struct {
	Status    string                   `json:"status"`
	Inventory []models.InventoryRecord `json:"inventory"`
}

// GetInventory fetches the full inventory record list from the sheet.
func (c *Client) GetInventory() ([]models.InventoryRecord, error) {
	body := map[string]interface{}{"type": typeGetInventory}

	var resp inventoryResponse
	if err := c.post(typeGetInventory, body, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("sheets getInventory: status %q", resp.Status)
	}
	return resp.Inventory, nil
}

// UpdateInventory replaces the entire record set on the sheet. The script has
// no partial update, so the complete list is sent every time. The response
// body is parsed but not otherwise consumed.
func (c *Client) UpdateInventory(records []models.InventoryRecord) error {
	body := map[string]interface{}{
		"type":      typeUpdateInventory,
		"inventory": records,
	}
	var resp json.RawMessage
	return c.post(typeUpdateInventory, body, &resp)
}

// SubmitOrder appends a finalized order to the sheet.
func (c *Client) SubmitOrder(order models.Order) error {
	payload := map[string]interface{}{
		"type":       typeOrder,
		"reference":  order.Reference,
		"name":       order.Name,
		"phone":      order.Phone,
		"orders":     order.Orders,
		"pickupDate": order.PickupDate,
		"total":      order.Total,
		"timestamp":  order.Timestamp,
	}
	var resp json.RawMessage
	return c.post(typeOrder, payload, &resp)
}

func (c *Client) post(op string, body interface{}, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	resp, err := c.HTTPClient.Post(c.URL, "application/json", bytes.NewReader(raw))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}
