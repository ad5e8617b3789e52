package ports

import (
	"time"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// Notifier publishes toasts to whoever renders them.
type Notifier interface {
	Emit(message string, typ domain.ToastType, duration time.Duration)
}
