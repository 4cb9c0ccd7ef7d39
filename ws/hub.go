package ws

import (
	"encoding/json"
	"log"
)

// Notification is the payload pushed to connected clients.
type Notification struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outbound struct {
	userID  string
	payload []byte
}

// Hub keeps track of connected clients and routes notifications to the
// connections belonging to a user. A user may hold several connections.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Notifications to deliver.
	notifications chan outbound
}

func NewHub() *Hub {
	return &Hub{
		clients:       make(map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		notifications: make(chan outbound, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.notifications:
			delivered := false
			for client := range h.clients {
				if client.userID != message.userID {
					continue
				}
				select {
				case client.send <- message.payload:
					delivered = true
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			if !delivered {
				// The user is offline. State is already committed; the miss is
				// logged and the message is not queued.
				log.Printf("Notification for %s dropped (not connected)", message.userID)
			}
		}
	}
}

// Notify implements services.Notifier. It never blocks the caller: when the
// hub cannot keep up the notification is dropped and logged.
func (h *Hub) Notify(userID, text string) {
	payload, err := json.Marshal(Notification{Type: "notification", Text: text})
	if err != nil {
		log.Printf("Error marshalling notification for %s: %v", userID, err)
		return
	}

	select {
	case h.notifications <- outbound{userID: userID, payload: payload}:
	default:
		log.Printf("Notification for %s dropped (hub backlog full)", userID)
	}
}
