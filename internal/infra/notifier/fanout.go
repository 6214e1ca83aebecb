package notifier

import (
	"storefront-engine/internal/domain/notification"
)

// Fanout delivers each event to every sink in order.
type Fanout struct {
	sinks []notification.Sink
}

func NewFanout(sinks ...notification.Sink) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Notify(e notification.Event) {
	for _, s := range f.sinks {
		s.Notify(e)
	}
}
