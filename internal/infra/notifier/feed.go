package notifier

import (
	"sync"

	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/pkg/clock"
)

const DefaultFeedSize = 100

// Feed keeps the most recent events in a ring so a polling UI can render
// them. Sequence numbers start at 1 and never repeat.
type Feed struct {
	mu    sync.RWMutex
	clock clock.Clock
	buf   []notification.Record
	next  int // write position in buf
	full  bool
	seq   int64
}

func NewFeed(size int, clk clock.Clock) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{clock: clk, buf: make([]notification.Record, size)}
}

func (f *Feed) Notify(e notification.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.buf[f.next] = notification.Record{Seq: f.seq, At: f.clock.Now(), Event: e}
	f.next = (f.next + 1) % len(f.buf)
	if f.next == 0 {
		f.full = true
	}
}

// Since returns retained records with Seq > seq, oldest first.
func (f *Feed) Since(seq int64) []notification.Record {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]notification.Record, 0)
	for _, r := range f.ordered() {
		if r.Seq > seq {
			out = append(out, r)
		}
	}
	return out
}

// LastSeq is the sequence number of the newest event, 0 when empty.
func (f *Feed) LastSeq() int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.seq
}

func (f *Feed) ordered() []notification.Record {
	if !f.full {
		return f.buf[:f.next]
	}
	out := make([]notification.Record, 0, len(f.buf))
	out = append(out, f.buf[f.next:]...)
	return append(out, f.buf[:f.next]...)
}
