package sse

import (
	"sync"
)

// Change kinds announced on the feed
const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// Event is a change notification for one establishment. Data is informational only;
// subscribers refetch rather than patching state from the payload.
type Event struct {
	EstablishmentID string
	Table           string
	Event           string
	Data            interface{}
}

// Hub manages SSE subscribers per establishment and fans out change notifications
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	bufferSize  int
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		bufferSize:  10,
	}
}

// Subscribe registers a new subscriber for an establishment and returns the event channel and cleanup function
func (h *Hub) Subscribe(establishmentID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.bufferSize)

	if h.subscribers[establishmentID] == nil {
		h.subscribers[establishmentID] = make(map[chan Event]struct{})
	}
	h.subscribers[establishmentID][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[establishmentID], ch)
			close(ch)
			if len(h.subscribers[establishmentID]) == 0 {
				delete(h.subscribers, establishmentID)
			}
		})
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of the event's establishment.
// Delivery is best-effort: a full subscriber buffer drops the event.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[event.EstablishmentID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for an establishment
func (h *Hub) SubscriberCount(establishmentID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[establishmentID])
}

// TotalSubscribers returns the total number of active subscribers across all establishments
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
