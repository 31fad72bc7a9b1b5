package game

import "time"

// SetClock overrides the manager's time source in tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}
