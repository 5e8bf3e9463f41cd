// Package notify carries transient user-facing notifications (toasts) from
// background work to whatever surface displays them.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Level classifies a notification.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single toast.
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(Notification) {})

// Send builds a notification stamped with the current time and delivers it.
func Send(n Notifier, level Level, msg string) {
	n.Notify(Notification{Level: level, Message: msg, At: time.Now()})
}

const defaultQueueSize = 32

// Queue buffers the most recent notifications for a UI to drain.
type Queue struct {
	mu        sync.Mutex
	items     []Notification
	limit     int
	listeners []func()
}

// NewQueue returns a queue keeping at most limit notifications. Older entries
// are dropped first.
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = defaultQueueSize
	}
	return &Queue{limit: limit}
}

// Notify implements Notifier.
func (q *Queue) Notify(n Notification) {
	if n.At.IsZero() {
		n.At = time.Now()
	}
	q.mu.Lock()
	q.items = append(q.items, n)
	if over := len(q.items) - q.limit; over > 0 {
		q.items = append([]Notification(nil), q.items[over:]...)
	}
	listeners := append([]func(){}, q.listeners...)
	q.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Subscribe registers fn to run after every Notify.
func (q *Queue) Subscribe(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.listeners = append(q.listeners, fn)
}

// Drain returns and clears the buffered notifications, oldest first.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of buffered notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Log writes notifications to a zap logger.
type Log struct {
	Logger *zap.Logger
}

// Notify implements Notifier.
func (l Log) Notify(n Notification) {
	if l.Logger == nil {
		return
	}
	fields := []zap.Field{zap.String("toast", n.Level.String())}
	if n.Level == Error || n.Level == Warning {
		l.Logger.Warn(n.Message, fields...)
		return
	}
	l.Logger.Debug(n.Message, fields...)
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(n Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}
