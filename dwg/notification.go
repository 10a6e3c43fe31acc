package dwg

import (
	"fmt"
	"slices"

	"github.com/arloliu/cadbin/cad"
)

// NotificationType classifies a diagnostic raised during a write.
type NotificationType uint8

const (
	// NotImplemented marks an object kind the writer has no encoder for.
	NotImplemented NotificationType = iota + 1
	// NotSupported marks an object that cannot be stored in the target revision.
	NotSupported
	Warning
	Error
)

func (t NotificationType) String() string {
	switch t {
	case NotImplemented:
		return "NotImplemented"
	case NotSupported:
		return "NotSupported"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("NotificationType(%d)", uint8(t))
	}
}

// Notification is a diagnostic about one object. Notifications never abort
// a write; the caller decides whether they are fatal.
type Notification struct {
	Message string
	Type    NotificationType
	Handle  cad.Handle
	Kind    cad.Kind
}

func (n Notification) String() string {
	return fmt.Sprintf("%s: %s (handle %#x)", n.Type, n.Message, uint64(n.Handle))
}

// Notifier receives notifications as they are raised.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// NotificationCollector is a Notifier that keeps every notification in the
// order received. It is not safe for concurrent use.
type NotificationCollector struct {
	items []Notification
}

var _ Notifier = (*NotificationCollector)(nil)

// Notify implements Notifier.
func (c *NotificationCollector) Notify(n Notification) {
	c.items = append(c.items, n)
}

// Notifications returns a copy of the collected notifications.
func (c *NotificationCollector) Notifications() []Notification {
	return slices.Clone(c.items)
}

// Len returns the number of collected notifications.
func (c *NotificationCollector) Len() int {
	return len(c.items)
}

// CountOf returns the number of notifications of type t.
func (c *NotificationCollector) CountOf(t NotificationType) int {
	n := 0
	for _, item := range c.items {
		if item.Type == t {
			n++
		}
	}

	return n
}

// Reset drops all collected notifications.
func (c *NotificationCollector) Reset() {
	c.items = c.items[:0]
}
