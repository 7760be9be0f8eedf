package model

// DefaultHistorySize is enough to catch the period of the bundled circuits
const DefaultHistorySize = 32

// History remembers the hashes of recent grid states to detect cycles.
type History struct {
	hashes []string
	size   int
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Period reports how many generations ago the given state was last seen,
// looking at the most recent states first.
func (h *History) Period(hash string) (int, bool) {
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			return len(h.hashes) - i, true
		}
	}
	return 0, false
}

// Push adds a state to the history, dropping the oldest one when full
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of remembered states
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every remembered state
func (h *History) Reset() {
	h.hashes = nil
}
