package models

// ToastSeverity is the visual class of a transient toast
type ToastSeverity string

const (
	ToastSuccess ToastSeverity = "success"
	ToastError   ToastSeverity = "error"
	ToastInfo    ToastSeverity = "info"
	ToastWarning ToastSeverity = "warning"
)

// Toast is a transient in-memory message. Toasts are never persisted —
// a process restart loses all pending toasts, which is expected.
type Toast struct {
	ID         string        `json:"id"`
	Severity   ToastSeverity `json:"severity"`
	Message    string        `json:"message"`
	DurationMS int64         `json:"duration_ms"`
}
