package simulation

import "sync"

// DefaultWindow is the number of recent steps SpeedTracker averages over.
const DefaultWindow = 5

// SpeedTracker keeps a bounded window of recent per-step movement.
// It is safe for concurrent use.
type SpeedTracker struct {
	mu     sync.Mutex
	window int
	speeds []float64
}

// NewSpeedTracker creates a tracker over the last window values.
// If window <= 0, DefaultWindow is used.
func NewSpeedTracker(window int) *SpeedTracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &SpeedTracker{
		window: window,
		speeds: make([]float64, 0, window),
	}
}

// Record appends a movement value, dropping the oldest beyond the window.
func (s *SpeedTracker) Record(movement float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.speeds) == s.window {
		copy(s.speeds, s.speeds[1:])
		s.speeds = s.speeds[:s.window-1]
	}
	s.speeds = append(s.speeds, movement)
}

// AverageSpeed returns the mean of the recorded values, or 0 if empty.
func (s *SpeedTracker) AverageSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.speeds) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.speeds {
		sum += v
	}
	return sum / float64(len(s.speeds))
}

// AverageDelta returns the mean of consecutive differences
// speeds[i] - speeds[i-1]. Negative values mean the layout is slowing down.
// Returns 0 with fewer than two values.
func (s *SpeedTracker) AverageDelta() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.speeds) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(s.speeds); i++ {
		sum += s.speeds[i] - s.speeds[i-1]
	}
	return sum / float64(len(s.speeds)-1)
}

// Speeds returns a copy of the window, oldest first.
func (s *SpeedTracker) Speeds() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, len(s.speeds))
	copy(out, s.speeds)
	return out
}

// Len returns the number of recorded values in the window.
func (s *SpeedTracker) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.speeds)
}

// Reset clears the window.
func (s *SpeedTracker) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speeds = s.speeds[:0]
}
