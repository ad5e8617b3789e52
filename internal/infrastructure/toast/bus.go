// Package toast is the in-process notification bus that carries toast events
// from producers (the HTTP client, form handlers) to whatever renders them.
package toast

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kalaiarasan0/farmdesk/internal/pkg/metrics"
	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// Subscriber receives every toast emitted after it was registered.
type Subscriber func(domain.Toast)

type subscription struct {
	id uint64
	fn Subscriber
}

// Bus fans toasts out to its subscribers synchronously, in subscription
// order. It keeps no history: late subscribers never see earlier toasts.
// All methods are safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID uint64
	log    zerolog.Logger
}

// NewBus creates an empty bus. log receives subscriber panics.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{log: log}
}

// Subscribe registers fn and returns the function that removes exactly this
// registration. Calling the returned function more than once is a no-op.
func (b *Bus) Subscribe(fn Subscriber) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

// Emit builds a toast and delivers it. An empty type means info; a zero
// duration means the toast stays until dismissed.
func (b *Bus) Emit(message string, typ domain.ToastType, duration time.Duration) {
	b.Publish(domain.Toast{Message: message, Type: typ, Duration: duration})
}

// Publish delivers t to every current subscriber before returning.
func (b *Bus) Publish(t domain.Toast) {
	if t.Type == "" {
		t.Type = domain.ToastInfo
	}

	b.mu.RLock()
	snapshot := make([]subscription, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.RUnlock()

	metrics.ToastsEmittedTotal.WithLabelValues(string(t.Type)).Inc()

	for _, s := range snapshot {
		b.deliver(s, t)
	}
}

func (b *Bus) Info(message string)    { b.Emit(message, domain.ToastInfo, domain.DefaultToastDuration) }
func (b *Bus) Success(message string) { b.Emit(message, domain.ToastSuccess, domain.DefaultToastDuration) }
func (b *Bus) Warning(message string) { b.Emit(message, domain.ToastWarning, domain.DefaultToastDuration) }
func (b *Bus) Error(message string)   { b.Emit(message, domain.ToastError, domain.DefaultToastDuration) }

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// deliver runs one callback, isolating a panic so the remaining subscribers
// still receive the toast.
func (b *Bus) deliver(s subscription, t domain.Toast) {
	defer func() {
		if r := recover(); r != nil {
			metrics.ToastSubscriberPanicsTotal.Inc()
			b.log.Error().
				Uint64("subscription_id", s.id).
				Str("toast_type", string(t.Type)).
				Str("panic", fmt.Sprint(r)).
				Msg("toast subscriber panicked")
		}
	}()
	s.fn(t)
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}
