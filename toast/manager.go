// Package toast is the transient message mechanism: process-wide,
// in-memory only, auto-expiring. Not to be confused with the persisted
// notification inbox.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"campus-eats-api/models"
)

// DefaultDuration is applied when a caller does not choose one.
const DefaultDuration = 3 * time.Second

// Sticky keeps a toast visible until explicitly dismissed.
const Sticky = time.Duration(0)

type Manager struct {
	mu     sync.Mutex
	toasts []models.Toast
	timers map[string]*time.Timer
	closed bool
}

func NewManager() *Manager {
	return &Manager{timers: make(map[string]*time.Timer)}
}

// Show appends a toast and schedules its removal after duration, unless
// duration is Sticky.
func (m *Manager) Show(severity models.ToastSeverity, message string, duration time.Duration) models.Toast {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := models.Toast{
		ID:         "toast-" + uuid.NewString(),
		Severity:   severity,
		Message:    message,
		DurationMS: duration.Milliseconds(),
	}
	if m.closed {
		return t
	}
	m.toasts = append(m.toasts, t)
	if duration > 0 {
		m.timers[t.ID] = time.AfterFunc(duration, func() {
			m.Dismiss(t.ID)
		})
	}
	return t
}

func (m *Manager) Success(message string) models.Toast {
	return m.Show(models.ToastSuccess, message, DefaultDuration)
}

func (m *Manager) Error(message string) models.Toast {
	return m.Show(models.ToastError, message, DefaultDuration)
}

func (m *Manager) Info(message string) models.Toast {
	return m.Show(models.ToastInfo, message, DefaultDuration)
}

func (m *Manager) Warning(message string) models.Toast {
	return m.Show(models.ToastWarning, message, DefaultDuration)
}

// Dismiss removes a toast immediately and cancels its timer.
func (m *Manager) Dismiss(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if timer, ok := m.timers[id]; ok {
		timer.Stop()
		delete(m.timers, id)
	}
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// Active returns the currently visible toasts in display order.
func (m *Manager) Active() []models.Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Toast, len(m.toasts))
	copy(out, m.toasts)
	return out
}

// Close cancels every pending timer and drops all toasts, leaving no
// dangling timers behind.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	for id, timer := range m.timers {
		timer.Stop()
		delete(m.timers, id)
	}
	m.toasts = nil
}
