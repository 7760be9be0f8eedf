package model

import "testing"

func TestHistoryPeriod(t *testing.T) {
	h := NewHistory(4)
	for _, hash := range []string{"a", "b", "c"} {
		h.Push(hash)
	}

	if period, ok := h.Period("c"); !ok || period != 1 {
		t.Fatalf("Period(c) = %d, %v; expected 1", period, ok)
	}
	if period, ok := h.Period("a"); !ok || period != 3 {
		t.Fatalf("Period(a) = %d, %v; expected 3", period, ok)
	}
	if _, ok := h.Period("z"); ok {
		t.Fatal("unexpected period for an unseen state")
	}

	h.Push("d")
	h.Push("e")
	if h.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", h.Len())
	}
	if _, ok := h.Period("a"); ok {
		t.Fatal("oldest state should have been dropped")
	}

	h.Reset()
	if h.Len() != 0 {
		t.Fatal("Reset did not clear the history")
	}
}

func TestClockPeriod(t *testing.T) {
	clock, err := BuiltinPattern("clock")
	if err != nil {
		t.Fatal(err)
	}
	w := NewWorld(64, 64)
	w.Place(clock, 19, 18)

	h := NewHistory(DefaultHistorySize)
	h.Push(w.Hash())
	for gen := 1; gen <= 40; gen++ {
		w.Tick()
		hash := w.Hash()
		if period, ok := h.Period(hash); ok {
			if period != 18 || gen != 25 {
				t.Fatalf("cycle of period %d found at generation %d, expected 18 at 25", period, gen)
			}
			return
		}
		h.Push(hash)
	}
	t.Fatal("no cycle found")
}
