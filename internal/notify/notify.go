// Package notify keeps the single transient message shown to the user.
//
// A new message replaces the current one immediately. Each message schedules
// its own clear, and every clear hides whatever is visible when it fires, so
// a message shown shortly after another can disappear early.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 3 * time.Second

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Notification struct {
	ID              uuid.UUID `json:"id"`
	Message         string    `json:"message"`
	Severity        Severity  `json:"severity"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	TextColor       string    `json:"textColor,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Sink displays notifications. It is called without the center's lock held.
type Sink interface {
	ShowNotification(n Notification)
	ClearNotification()
}

type Center struct {
	mu       sync.Mutex
	sink     Sink
	ttl      time.Duration
	current  Notification
	visible  bool
	darkMode bool

	logger    *slog.Logger
	now       func() time.Time
	afterFunc func(d time.Duration, f func())
}

// NewCenter returns a center that pushes to sink, which may be nil.
// A non-positive ttl uses DefaultTTL.
func NewCenter(sink Sink, ttl time.Duration, logger *slog.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		sink:   sink,
		ttl:    ttl,
		logger: logger.With("component", "notify"),
		now:    time.Now,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// SetDarkMode switches the palette used for notifications created afterwards
func (c *Center) SetDarkMode(dark bool) {
	c.mu.Lock()
	c.darkMode = dark
	c.mu.Unlock()
}

// Notify shows message and schedules it to clear after the TTL
func (c *Center) Notify(message string, severity Severity) Notification {
	c.mu.Lock()
	bg, fg := colors(severity, c.darkMode)
	n := Notification{
		ID:              uuid.New(),
		Message:         message,
		Severity:        severity,
		BackgroundColor: bg,
		TextColor:       fg,
		CreatedAt:       c.now(),
	}
	c.current = n
	c.visible = true
	c.mu.Unlock()

	c.logger.Debug("notification shown", "id", n.ID, "severity", severity, "message", message)

	if c.sink != nil {
		c.sink.ShowNotification(n)
	}
	c.afterFunc(c.ttl, c.clear)

	return n
}

// Current returns the visible notification, if any
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.visible
}

func (c *Center) clear() {
	c.mu.Lock()
	c.visible = false
	c.mu.Unlock()

	if c.sink != nil {
		c.sink.ClearNotification()
	}
}

func colors(severity Severity, dark bool) (background, text string) {
	switch severity {
	case SeverityError:
		if dark {
			return "#c0392b", "white"
		}
		return "#e74c3c", "white"
	case SeveritySuccess:
		if dark {
			return "#27ae60", "white"
		}
		return "#2ecc71", "white"
	default:
		return "", ""
	}
}
