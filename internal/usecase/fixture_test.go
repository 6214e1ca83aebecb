//go:build unit

package usecase_test

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/infra/catalog"
	"storefront-engine/internal/infra/notifier"
	"storefront-engine/internal/infra/repository"
	"storefront-engine/internal/infra/store"
	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/pkg/schedule"
	"storefront-engine/internal/usecase"

	"github.com/stretchr/testify/require"
)

var fixtureStart = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// sequentialIDs hands out PREFIX-0001, PREFIX-0002, ... per prefix.
type sequentialIDs struct {
	mu   sync.Mutex
	next map[string]int
}

func (g *sequentialIDs) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next == nil {
		g.next = make(map[string]int)
	}
	g.next[prefix]++
	return fmt.Sprintf("%s-%04d", prefix, g.next[prefix])
}

// fixture wires engines the way bootstrap does, over an in-memory store and
// a manual scheduler.
type fixture struct {
	t      *testing.T
	store  *store.MemoryStore
	feed   *notifier.Feed
	clock  *clock.MockClock
	sched  *schedule.Manual
	ids    *sequentialIDs
	logger *slog.Logger
	cfg    config.EngineConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(fixtureStart)
	return &fixture{
		t:      t,
		store:  store.NewMemoryStore(logger),
		feed:   notifier.NewFeed(notifier.DefaultFeedSize, clk),
		clock:  clk,
		sched:  schedule.NewManual(clk),
		ids:    &sequentialIDs{},
		logger: logger,
		cfg:    config.NewTestConfig().Engine,
	}
}

func (f *fixture) cart() usecase.CartUseCase {
	return usecase.NewCartUseCase(
		repository.NewCartRepository(f.store, f.logger),
		repository.NewOrderRepository(f.store, f.logger),
		f.feed,
		f.sched,
		f.clock,
		f.ids,
		usecase.NewOrderTiming(f.cfg),
		f.logger,
	)
}

func (f *fixture) loyalty() usecase.LoyaltyUseCase {
	f.t.Helper()
	menu, err := catalog.Default()
	require.NoError(f.t, err)
	return usecase.NewLoyaltyUseCase(
		repository.NewPointsRepository(f.store, f.logger),
		menu.Rewards(),
		f.feed,
		f.logger,
	)
}

func (f *fixture) reservations() usecase.ReservationUseCase {
	return usecase.NewReservationUseCase(
		repository.NewReservationRepository(f.store, f.logger),
		f.feed,
		f.sched,
		f.ids,
		f.cfg.ReservationConfirmDelay,
		f.logger,
	)
}

func (f *fixture) reviews() usecase.ReviewUseCase {
	return usecase.NewReviewUseCase(
		repository.NewReviewRepository(f.store, f.logger),
		f.feed,
		f.clock,
		f.ids,
		f.logger,
	)
}

func (f *fixture) favorites() usecase.FavoriteUseCase {
	return usecase.NewFavoriteUseCase(
		repository.NewFavoriteRepository(f.store, f.logger),
		f.feed,
		f.logger,
	)
}

func (f *fixture) seed(key, raw string) {
	f.t.Helper()
	require.NoError(f.t, f.store.Save(key, []byte(raw)))
}

func (f *fixture) raw(key string) string {
	f.t.Helper()
	v, ok := f.store.Raw(key)
	require.True(f.t, ok, "nothing stored under %q", key)
	return v
}

// events returns everything notified after seq, oldest first.
func (f *fixture) events(since int64) []notification.Event {
	records := f.feed.Since(since)
	out := make([]notification.Event, 0, len(records))
	for _, r := range records {
		out = append(out, r.Event)
	}
	return out
}

func (f *fixture) lastEvent() notification.Event {
	f.t.Helper()
	all := f.events(0)
	require.NotEmpty(f.t, all, "no notifications emitted")
	return all[len(all)-1]
}

func kinds(events []notification.Event) []notification.Kind {
	out := make([]notification.Kind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}
