package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/domain/reservation"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/pkg/schedule"
	"storefront-engine/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../tests/mock/usecase/mock_reservation.go -package=usecasemock

type ReservationRepository = shared.Repository[[]*reservation.Reservation]

type ReservationInput struct {
	Name   string
	Email  string
	Phone  string
	Date   string
	Time   string
	Guests int
}

type ReservationUseCase interface {
	CreateReservation(in ReservationInput) (*reservation.Reservation, error)
	// CancelReservation reports whether id matched a reservation.
	CancelReservation(id string) bool
	Reservations() []*reservation.Reservation
	Reservation(id string) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	mu           sync.Mutex
	reservations []*reservation.Reservation // newest first
	repo         ReservationRepository
	sink         notification.Sink
	scheduler    schedule.Scheduler
	ids          shared.IDGenerator
	confirmDelay time.Duration
	logger       *slog.Logger
}

func NewReservationUseCase(
	repo ReservationRepository,
	sink notification.Sink,
	scheduler schedule.Scheduler,
	ids shared.IDGenerator,
	confirmDelay time.Duration,
	logger *slog.Logger,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservations: shared.Hydrate(logger, repo, "reservations", nil),
		repo:         repo,
		sink:         sink,
		scheduler:    scheduler,
		ids:          ids,
		confirmDelay: confirmDelay,
		logger:       logger,
	}
}

// CreateReservation rejects a guest count outside 1..12 and leaves state
// untouched.
func (uc *reservationUseCaseImpl) CreateReservation(in ReservationInput) (*reservation.Reservation, error) {
	guests, err := reservation.NewGuests(in.Guests)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	res, err := reservation.NewReservation(
		uc.ids.NewID(shared.ReservationIDPrefix),
		reservation.NewContact(in.Name, in.Email, in.Phone),
		reservation.NewSlot(in.Date, in.Time),
		guests,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	uc.reservations = append([]*reservation.Reservation{res}, uc.reservations...)
	uc.persist()

	uc.sink.Notify(notification.New(notification.KindReservationCreated,
		"Reservation Created!",
		fmt.Sprintf("Table reserved for %d guests on %s at %s", res.Guests(), res.Date(), res.Time())).WithRef(res.ID()))

	id := res.ID()
	uc.scheduler.AfterFunc(uc.confirmDelay, func() {
		uc.confirm(id)
	})
	uc.logger.Debug("Scheduled reservation confirmation",
		slog.String("reservation_id", id),
		slog.Duration("confirm_in", uc.confirmDelay),
	)

	return res.Clone(), nil
}

func (uc *reservationUseCaseImpl) CancelReservation(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	res := uc.find(id)
	if res == nil {
		return false
	}
	if !res.Cancel() {
		return true
	}
	uc.persist()

	uc.sink.Notify(notification.New(notification.KindReservationCancelled,
		"Reservation Cancelled", "Your reservation has been cancelled").WithRef(id))
	return true
}

func (uc *reservationUseCaseImpl) Reservations() []*reservation.Reservation {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]*reservation.Reservation, 0, len(uc.reservations))
	for _, r := range uc.reservations {
		out = append(out, r.Clone())
	}
	return out
}

func (uc *reservationUseCaseImpl) Reservation(id string) (*reservation.Reservation, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	res := uc.find(id)
	if res == nil {
		return nil, errs.ErrReservationNotFound
	}
	return res.Clone(), nil
}

// confirm is the timer callback; a reservation cancelled in the meantime
// stays cancelled.
func (uc *reservationUseCaseImpl) confirm(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	res := uc.find(id)
	if res == nil || !res.Confirm() {
		uc.logger.Debug("Skipped stale reservation confirmation", slog.String("reservation_id", id))
		return
	}
	uc.persist()

	uc.sink.Notify(notification.New(notification.KindReservationConfirmed,
		"Reservation Confirmed!", "Your table is ready and waiting for you!").WithRef(id))
}

func (uc *reservationUseCaseImpl) find(id string) *reservation.Reservation {
	for _, r := range uc.reservations {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

func (uc *reservationUseCaseImpl) persist() {
	shared.Persist(uc.logger, uc.repo, "reservations", uc.reservations)
}
