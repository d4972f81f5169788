package notifier

import (
	"github.com/bostontheory/events/internal/event"
)

// Notifier defines the interface for announcing seminars
type Notifier interface {
	// Notify posts announcements for the given events
	Notify(events []event.Event) error
}
