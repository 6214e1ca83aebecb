package notification

import "time"

type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

func (s Severity) IsValid() bool {
	return s == SeverityNormal || s == SeverityDestructive
}

func (s Severity) String() string {
	return string(s)
}

// Kind identifies the engine event that produced a notification.
type Kind string

const (
	KindCartAdded            Kind = "cart.added"
	KindCartUpdated          Kind = "cart.updated"
	KindCartRemoved          Kind = "cart.removed"
	KindCartEmpty            Kind = "cart.empty"
	KindCartLimitReached     Kind = "cart.limit_reached"
	KindOrderPlaced          Kind = "order.placed"
	KindOrderPreparing       Kind = "order.preparing"
	KindOrderReady           Kind = "order.ready"
	KindTierUpgraded         Kind = "loyalty.tier_upgraded"
	KindPointsRedeemed       Kind = "loyalty.redeemed"
	KindInsufficientPoints   Kind = "loyalty.insufficient"
	KindReservationCreated   Kind = "reservation.created"
	KindReservationConfirmed Kind = "reservation.confirmed"
	KindReservationCancelled Kind = "reservation.cancelled"
	KindReviewPosted         Kind = "review.posted"
	KindFavoriteAdded        Kind = "favorite.added"
	KindFavoriteRemoved      Kind = "favorite.removed"
)

type Event struct {
	Kind     Kind
	Title    string
	Message  string
	Severity Severity
	// Ref is the id of the order, reservation or review the event is about.
	Ref string
}

func New(kind Kind, title, message string) Event {
	return Event{Kind: kind, Title: title, Message: message, Severity: SeverityNormal}
}

func Destructive(kind Kind, title, message string) Event {
	return Event{Kind: kind, Title: title, Message: message, Severity: SeverityDestructive}
}

func (e Event) WithRef(ref string) Event {
	e.Ref = ref
	return e
}

func (e Event) IsDestructive() bool {
	return e.Severity == SeverityDestructive
}

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/notification/mock_notification.go -package=notificationmock

// Sink receives engine events. Engines call Notify while holding their own
// lock, so implementations must not call back into an engine.
type Sink interface {
	Notify(Event)
}

// Record is an Event as stored by a feed.
type Record struct {
	Seq int64
	At  time.Time
	Event
}
