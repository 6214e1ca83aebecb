// Package schedule runs deferred callbacks. Engines use it for the simulated
// order and reservation progressions; callbacks must re-check the state they
// act on because nothing is ever unscheduled.
package schedule

import (
	"sort"
	"sync"
	"time"

	"storefront-engine/internal/pkg/clock"
)

type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// Real fires callbacks on wall-clock timers, each on its own goroutine.
type Real struct{}

func NewReal() Scheduler {
	return &Real{}
}

func (r *Real) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

type task struct {
	at  time.Time
	seq int
	fn  func()
}

// Manual holds callbacks until Advance moves its clock past their due time.
// Callbacks run on the goroutine calling Advance, in due-time order.
type Manual struct {
	mu    sync.Mutex
	clock *clock.MockClock
	seq   int
	tasks []task
}

func NewManual(clk *clock.MockClock) *Manual {
	return &Manual{clock: clk}
}

func (m *Manual) AfterFunc(d time.Duration, f func()) {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.tasks = append(m.tasks, task{at: m.clock.Now().Add(d), seq: m.seq, fn: f})
}

// Advance moves the clock forward by d, firing every callback that becomes
// due on the way. Callbacks scheduled while advancing fire too if they fall
// inside the window. Returns the number of callbacks fired.
func (m *Manual) Advance(d time.Duration) int {
	target := m.clock.Now().Add(d)
	fired := 0
	for {
		next, ok := m.popDue(target)
		if !ok {
			break
		}
		if next.at.After(m.clock.Now()) {
			m.clock.Set(next.at)
		}
		next.fn()
		fired++
	}
	m.clock.Set(target)
	return fired
}

// Pending reports how many callbacks are still waiting.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *Manual) popDue(target time.Time) (task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].at.Equal(m.tasks[j].at) {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].at.Before(m.tasks[j].at)
	})
	if len(m.tasks) == 0 || m.tasks[0].at.After(target) {
		return task{}, false
	}
	next := m.tasks[0]
	m.tasks = m.tasks[1:]
	return next, true
}
