package reservation

import (
	"fmt"
	"time"

	"flat-reservation/internal/domain/flat"
	"flat-reservation/internal/domain/tenant"
	"flat-reservation/internal/pkg/clock"
	"flat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultNoticePeriod = 24 * time.Hour

// Lifecycle decides whether an event may move a reservation to its next
// status. It performs no I/O and never mutates its input.
type Lifecycle struct {
	Clock        clock.Clock
	NoticePeriod time.Duration
}

func NewLifecycle(clk clock.Clock, noticePeriod time.Duration) *Lifecycle {
	if noticePeriod <= 0 {
		noticePeriod = DefaultNoticePeriod
	}
	return &Lifecycle{
		Clock:        clk,
		NoticePeriod: noticePeriod,
	}
}

// Request is one intent against a reservation. Flat is ignored for cancel.
type Request struct {
	Event Event
	Actor tenant.Tenant
	Flat  flat.Flat
}

type guardFunc func(current Reservation, req Request) error

type validateFunc func(l *Lifecycle, current Reservation) error

type effectFunc func(current Reservation, req Request) uuid.UUID

type transition struct {
	validate validateFunc
	to       Status
	occupant effectFunc
}

// Guards are keyed by event only and run before the legality check.
var guards = map[Event]guardFunc{
	EventReserve: requireNotOwner,
	EventApprove: requireOwner,
	EventReject:  requireOwner,
	EventCancel:  requireOccupant,
}

var transitions = map[Status]map[Event]transition{
	StatusFree: {
		EventReserve: {validate: (*Lifecycle).requireNotice, to: StatusReserved, occupant: occupyByActor},
	},
	StatusReserved: {
		EventApprove: {to: StatusApproved, occupant: keepOccupant},
		EventReject:  {to: StatusRejected, occupant: clearOccupant},
		EventCancel:  {to: StatusFree, occupant: clearOccupant},
	},
	StatusApproved: {
		EventCancel: {to: StatusFree, occupant: clearOccupant},
	},
	StatusRejected: {},
}

// Apply runs guard, legality check and validation in that order. On any
// error the current snapshot is returned untouched.
func (l *Lifecycle) Apply(current Reservation, req Request) (Reservation, error) {
	guard, ok := guards[req.Event]
	if !ok {
		return current, errs.NewValidation(fmt.Sprintf("unknown reservation event %q", req.Event))
	}
	if err := guard(current, req); err != nil {
		return current, err
	}

	t, ok := transitions[current.status][req.Event]
	if !ok {
		return current, errs.NewValidation(fmt.Sprintf(
			"illegal transition for current status: cannot %s a %s reservation", req.Event, current.status))
	}
	if t.validate != nil {
		if err := t.validate(l, current); err != nil {
			return current, err
		}
	}

	return current.withStatus(t.to, t.occupant(current, req)), nil
}

func (l *Lifecycle) Reserve(current Reservation, actor tenant.Tenant, f flat.Flat) (Reservation, error) {
	return l.Apply(current, Request{Event: EventReserve, Actor: actor, Flat: f})
}

func (l *Lifecycle) Approve(current Reservation, actor tenant.Tenant, f flat.Flat) (Reservation, error) {
	return l.Apply(current, Request{Event: EventApprove, Actor: actor, Flat: f})
}

func (l *Lifecycle) Reject(current Reservation, actor tenant.Tenant, f flat.Flat) (Reservation, error) {
	return l.Apply(current, Request{Event: EventReject, Actor: actor, Flat: f})
}

func (l *Lifecycle) Cancel(current Reservation, actor tenant.Tenant) (Reservation, error) {
	return l.Apply(current, Request{Event: EventCancel, Actor: actor})
}

// CanTransition reports whether the table defines event for status.
func CanTransition(status Status, event Event) bool {
	_, ok := transitions[status][event]
	return ok
}

func requireNotOwner(current Reservation, req Request) error {
	if current.flatID != req.Flat.ID() {
		return errs.NewAuthorization("reservation does not belong to the flat")
	}
	if req.Flat.IsOwnedBy(req.Actor.ID()) {
		return errs.NewAuthorization("owner cannot reserve own flat")
	}
	return nil
}

func requireOwner(current Reservation, req Request) error {
	if current.flatID != req.Flat.ID() {
		return errs.NewAuthorization("reservation does not belong to the flat")
	}
	if !req.Flat.IsOwnedBy(req.Actor.ID()) {
		return errs.NewAuthorization("only the flat owner can decide on a reservation")
	}
	return nil
}

// requireOccupant has nothing to compare against on FREE and REJECTED
// slots; those fall through to the illegal-transition check.
func requireOccupant(current Reservation, req Request) error {
	if current.occupantID == uuid.Nil {
		return nil
	}
	if !current.IsOccupiedBy(req.Actor.ID()) {
		return errs.NewAuthorization("only the occupant can cancel a reservation")
	}
	return nil
}

func (l *Lifecycle) requireNotice(current Reservation) error {
	now := l.Clock.Now()
	if !now.Add(l.NoticePeriod).Before(current.slotTime) {
		return errs.NewValidation(fmt.Sprintf(
			"current tenant should be notified about reservation at least %s in advance", l.NoticePeriod))
	}
	return nil
}

func occupyByActor(_ Reservation, req Request) uuid.UUID { return req.Actor.ID() }
func keepOccupant(current Reservation, _ Request) uuid.UUID { return current.occupantID }
func clearOccupant(Reservation, Request) uuid.UUID { return uuid.Nil }
