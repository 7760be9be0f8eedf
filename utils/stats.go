package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AverageHeads         float64
	TotalGenerations     uint64
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation uint64, heads int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for electron heads
	if s.AverageHeads == 0 {
		s.AverageHeads = float64(heads)
	} else {
		s.AverageHeads = (s.AverageHeads * 0.9) + (float64(heads) * 0.1)
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
