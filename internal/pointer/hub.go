package pointer

// Handler receives pointer coordinates in viewport units.
type Handler func(x, y float64)

// Hub fans pointer-move events out to subscribers. It is used from a
// single goroutine, so Publish runs handlers synchronously and in order.
type Hub struct {
	handlers map[int]Handler
	order    []int
	next     int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: make(map[int]Handler)}
}

// Subscribe registers h and returns the function that removes it.
// Calling the returned function more than once is harmless.
func (h *Hub) Subscribe(fn Handler) (unsubscribe func()) {
	id := h.next
	h.next++
	h.handlers[id] = fn
	h.order = append(h.order, id)
	return func() {
		if _, ok := h.handlers[id]; !ok {
			return
		}
		delete(h.handlers, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers one pointer position to every subscriber. Handlers may
// subscribe or unsubscribe while it runs; removed handlers are skipped and
// new ones wait for the next position.
func (h *Hub) Publish(x, y float64) {
	for _, id := range append([]int(nil), h.order...) {
		if fn, ok := h.handlers[id]; ok {
			fn(x, y)
		}
	}
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int { return len(h.handlers) }
