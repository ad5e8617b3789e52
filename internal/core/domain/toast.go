package domain

import (
	"encoding/json"
	"time"
)

// ToastType is the severity of a toast notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

// DefaultToastDuration is how long a toast stays on screen unless the caller
// says otherwise.
const DefaultToastDuration = 3000 * time.Millisecond

// Valid reports whether t is one of the four known toast types.
func (t ToastType) Valid() bool {
	switch t {
	case ToastSuccess, ToastError, ToastWarning, ToastInfo:
		return true
	}
	return false
}

// Toast is a transient notification delivered to every bus subscriber.
// A zero Duration means the subscriber must dismiss it manually.
type Toast struct {
	Message  string
	Type     ToastType
	Duration time.Duration
}

// Persistent reports whether the toast has no auto-dismiss timeout.
func (t Toast) Persistent() bool {
	return t.Duration <= 0
}

type toastJSON struct {
	Message  string    `json:"message"`
	Type     ToastType `json:"type"`
	Duration *int64    `json:"duration,omitempty"`
}

// MarshalJSON renders the toast as {message, type, duration} with duration in
// milliseconds, omitted for persistent toasts.
func (t Toast) MarshalJSON() ([]byte, error) {
	out := toastJSON{Message: t.Message, Type: t.Type}
	if !t.Persistent() {
		ms := t.Duration.Milliseconds()
		out.Duration = &ms
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the shape produced by MarshalJSON; a missing or null
// duration yields a persistent toast.
func (t *Toast) UnmarshalJSON(data []byte) error {
	var in toastJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	t.Message = in.Message
	t.Type = in.Type
	t.Duration = 0
	if in.Duration != nil {
		t.Duration = time.Duration(*in.Duration) * time.Millisecond
	}
	return nil
}
