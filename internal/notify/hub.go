package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Sink recebe eventos do alocador. O alocador nunca conhece o
// transporte: zero, um ou vários assinantes funcionam igual.
type Sink interface {
	Publish(ev Event)
}

// Multi replica o evento para vários sinks
type Multi []Sink

func (m Multi) Publish(ev Event) {
	for _, s := range m {
		s.Publish(ev)
	}
}

// Hub é o sink em memória: fan-out para assinantes do processo
// (ex.: stream SSE do barbeiro). Publish nunca bloqueia; assinante
// lento perde eventos (o registro durável cobre a lacuna).
type Hub struct {
	log *zap.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:  log,
		subs: make(map[int]chan Event),
	}
}

func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan Event, 16)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if _, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(ch)
		}
	}

	return ch, cancel
}

func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
			// entregue
		default:
			// assinante cheio → descartamos (nunca travar o booking)
			h.log.Warn("notify: subscriber queue full, dropping event",
				zap.Int("subscriber", id),
				zap.String("type", ev.Type),
			)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
