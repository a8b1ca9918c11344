package metrics

// History keeps the most recent population samples for charts.
type History struct {
	capacity int
	values   []float64
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 60
	}
	return &History{capacity: capacity, values: make([]float64, 0, capacity)}
}

func (h *History) Add(v float64) {
	h.values = append(h.values, v)
	if len(h.values) > h.capacity {
		h.values = h.values[1:]
	}
}

// Values returns a copy, oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}

func (h *History) Len() int { return len(h.values) }

func (h *History) Reset() { h.values = h.values[:0] }
