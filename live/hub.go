package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/sourdough-shop/models"
)

// Event types pushed to storefront clients. The store itself is still synced
// by polling; this feed only fans server-side updates out to open browsers.
const (
	EventInventoryUpdate = "inventory_update"
	EventOrderReceived   = "order_received"
	EventPickupDate      = "pickup_date_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks every connected storefront client.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient adds a connection to the broadcast set.
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = struct{}{}
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastInventoryUpdate pushes a fresh inventory snapshot to every client.
func BroadcastInventoryUpdate(records []models.InventoryRecord) {
	broadcast(Message{
		Event: EventInventoryUpdate,
		Data:  records,
	})
}

// BroadcastOrderReceived announces a submitted order reference.
func BroadcastOrderReceived(reference string) {
	broadcast(Message{
		Event: EventOrderReceived,
		Data:  map[string]string{"reference": reference},
	})
}

// BroadcastPickupDate announces a changed shop-wide pickup date.
func BroadcastPickupDate(date string) {
	broadcast(Message{
		Event: EventPickupDate,
		Data:  map[string]string{"pickupDate": date},
	})
}

func broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
