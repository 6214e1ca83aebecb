//go:build unit

package notifier_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/infra/notifier"
	"storefront-engine/internal/pkg/clock"
	notificationmock "storefront-engine/tests/mock/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func event(title string) notification.Event {
	return notification.New(notification.KindCartAdded, title, "")
}

func titles(records []notification.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}

func TestFeed(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	t.Run("empty feed", func(t *testing.T) {
		f := notifier.NewFeed(3, clk)
		assert.Empty(t, f.Since(0))
		assert.Zero(t, f.LastSeq())
	})

	t.Run("since filters by sequence", func(t *testing.T) {
		f := notifier.NewFeed(10, clk)
		f.Notify(event("a"))
		f.Notify(event("b"))
		f.Notify(event("c"))

		assert.Equal(t, []string{"a", "b", "c"}, titles(f.Since(0)))
		assert.Equal(t, []string{"c"}, titles(f.Since(2)))
		assert.Empty(t, f.Since(3))
		assert.Equal(t, int64(3), f.LastSeq())
	})

	t.Run("oldest events are dropped when full", func(t *testing.T) {
		f := notifier.NewFeed(3, clk)
		for _, s := range []string{"a", "b", "c", "d", "e"} {
			f.Notify(event(s))
		}

		got := f.Since(0)
		assert.Equal(t, []string{"c", "d", "e"}, titles(got))
		assert.Equal(t, int64(3), got[0].Seq)
		assert.Equal(t, int64(5), got[2].Seq)
	})

	t.Run("records carry the clock time", func(t *testing.T) {
		f := notifier.NewFeed(3, clk)
		f.Notify(event("a"))
		clk.Add(time.Minute)
		f.Notify(event("b"))

		got := f.Since(0)
		require.Len(t, got, 2)
		assert.Equal(t, time.Minute, got[1].At.Sub(got[0].At))
	})
}

func TestFanout(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := notificationmock.NewMockSink(ctrl)
	second := notificationmock.NewMockSink(ctrl)

	e := notification.Destructive(notification.KindCartEmpty, "Cart is Empty", "")
	gomock.InOrder(
		first.EXPECT().Notify(e),
		second.EXPECT().Notify(e),
	)

	notifier.NewFanout(first, second).Notify(e)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	sink := notifier.NewLogSink(logger)

	sink.Notify(notification.Destructive(notification.KindInsufficientPoints, "Insufficient Points", "nope"))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"kind":"loyalty.insufficient"`)

	buf.Reset()
	sink.Notify(notification.New(notification.KindOrderPlaced, "Order Placed Successfully!", "").WithRef("ORD-1"))
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"ref":"ORD-1"`)
}
