package surface

import "sync"

// Subscription is a handle for one registered Handler
type Subscription struct {
	hub *hub
	id  uint64
}

// Close unregisters the handler; safe to call more than once
func (s *Subscription) Close() {
	if s == nil || s.hub == nil {
		return
	}
	s.hub.remove(s.id)
}

// hub keeps handlers in subscription order
type hub struct {
	mu       sync.Mutex
	nextID   uint64
	ids      []uint64
	handlers map[uint64]Handler
}

func (h *hub) subscribe(fn Handler) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.handlers == nil {
		h.handlers = make(map[uint64]Handler)
	}
	h.nextID++
	h.ids = append(h.ids, h.nextID)
	h.handlers[h.nextID] = fn
	return &Subscription{hub: h, id: h.nextID}
}

func (h *hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.handlers[id]; !ok {
		return
	}
	delete(h.handlers, id)
	for i, v := range h.ids {
		if v == id {
			h.ids = append(h.ids[:i], h.ids[i+1:]...)
			break
		}
	}
}

// dispatch snapshots handlers so a handler may unsubscribe itself
func (h *hub) dispatch(ev Event) {
	h.mu.Lock()
	fns := make([]Handler, 0, len(h.ids))
	for _, id := range h.ids {
		fns = append(fns, h.handlers[id])
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// closeAll releases every outstanding subscription
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ids = nil
	h.handlers = nil
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.ids)
}
