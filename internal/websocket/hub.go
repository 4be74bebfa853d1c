package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is pushed to every client watching a character whenever one of
// the mutating sheet operations commits.
type Event struct {
	Type        string `json:"type"`
	CharacterID uint   `json:"characterId"`
}

const (
	EventSheetUpdated = "sheet_updated"
	EventSheetDeleted = "sheet_deleted"
)

// Hub fans sheet events out to the clients subscribed to each character.
type Hub struct {
	watchers   map[uint]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	stop       chan struct{}
	done       chan struct{}
	stopped    bool
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		watchers:   make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for _, clients := range h.watchers {
				for client := range clients {
					client.Close()
				}
			}
			h.watchers = make(map[uint]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				if h.watchers[client.characterID] == nil {
					h.watchers[client.characterID] = make(map[*Client]bool)
				}
				h.watchers[client.characterID][client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.watchers[client.characterID]; ok {
				if clients[client] {
					delete(clients, client)
					client.Close()
					if len(clients) == 0 {
						delete(h.watchers, client.characterID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("ERROR [hub.broadcast] marshal: %v", err)
				continue
			}
			h.mu.RLock()
			for client := range h.watchers[event.CharacterID] {
				select {
				case client.send <- data:
				default:
					// Slow consumer, drop the event for this client.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Stop shuts the hub down and waits for Run to exit.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

// NotifyUpdated announces a committed change to a character sheet.
func (h *Hub) NotifyUpdated(characterID uint) {
	h.notify(Event{Type: EventSheetUpdated, CharacterID: characterID})
}

// NotifyDeleted announces that a character was deleted.
func (h *Hub) NotifyDeleted(characterID uint) {
	h.notify(Event{Type: EventSheetDeleted, CharacterID: characterID})
}

func (h *Hub) notify(event Event) {
	h.mu.RLock()
	stopped := h.stopped
	h.mu.RUnlock()
	if stopped {
		return
	}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("ERROR [hub.notify] broadcast queue full, dropping event for character %d", event.CharacterID)
	}
}

// Register subscribes a client to its character's events.
func (h *Hub) Register(client *Client) {
	h.register <- client
}
