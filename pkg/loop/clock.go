package loop

import (
	"sync"
	"time"
)

// Clock supplies the monotonic timestamp read at the start of every tick
type Clock interface {
	Now() time.Time
}

// RealClock reads the system monotonic clock
type RealClock struct{}

// Now returns the current time with its monotonic reading
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced clock for deterministic runs
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a mock clock starting at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the mocked time forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Set jumps the mocked time to t, which may be in the past
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
