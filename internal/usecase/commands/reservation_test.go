//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"flat-reservation/internal/domain/flat"
	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/domain/tenant"
	"flat-reservation/internal/infra/memstore"
	"flat-reservation/internal/infra/metrics"
	"flat-reservation/internal/pkg/clock"
	"flat-reservation/internal/pkg/errs"
	"flat-reservation/internal/usecase/commands"
	"flat-reservation/tests/common/builder"
	commandsmock "flat-reservation/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type observation struct {
	action  string
	outcome string
}

type fakeRecorder struct {
	mu  sync.Mutex
	obs []observation
}

func (r *fakeRecorder) Observe(action, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.obs = append(r.obs, observation{action: action, outcome: outcome})
}

func (r *fakeRecorder) last() observation {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.obs) == 0 {
		return observation{}
	}
	return r.obs[len(r.obs)-1]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	notifier     *commandsmock.MockNotifier
	recorder     *fakeRecorder
	reservations *memstore.ReservationStore
	tenants      *memstore.TenantStore
	flats        *memstore.FlatStore
	cmds         commands.ReservationCommands

	owner    tenant.Tenant
	visitor  tenant.Tenant
	stranger tenant.Tenant
	flat     flat.Flat
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.notifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.recorder = &fakeRecorder{}

	logger := discardLogger()
	s.reservations = memstore.NewReservationStore(logger)
	s.tenants = memstore.NewTenantStore(logger)
	s.flats = memstore.NewFlatStore(logger)

	clk := clock.NewMockClock(now)
	s.cmds = commands.NewReservationCommands(
		s.reservations, s.tenants, s.flats, s.notifier,
		reservation.NewLifecycle(clk, 24*time.Hour),
		s.recorder, clk, logger,
	)

	s.owner = s.saveTenant("owner@example.com")
	s.visitor = s.saveTenant("visitor@example.com")
	s.stranger = s.saveTenant("stranger@example.com")
	s.flat = builder.NewFlatBuilder().WithOwner(s.owner.ID()).BuildDomain()
	_, err := s.flats.Save(s.ctx, s.flat)
	s.Require().NoError(err)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationCommandsTestSuite) saveTenant(email string) tenant.Tenant {
	t, err := s.tenants.Save(s.ctx, builder.NewTenantBuilder().WithEmail(email).BuildDomain())
	s.Require().NoError(err)
	return t
}

func (s *ReservationCommandsTestSuite) saveSlot(status reservation.Status, occupant uuid.UUID, slotTime time.Time) reservation.Reservation {
	res := builder.NewReservationBuilder().
		WithFlat(s.flat.ID()).
		WithSlotTime(slotTime).
		WithStatus(status, occupant).
		BuildDomain()
	saved, err := s.reservations.Save(s.ctx, res)
	s.Require().NoError(err)
	return saved
}

func (s *ReservationCommandsTestSuite) stored(id uuid.UUID) reservation.Reservation {
	res, _, err := s.reservations.FindByID(s.ctx, id)
	s.Require().NoError(err)
	return res
}

func (s *ReservationCommandsTestSuite) assertGuardReleased(id uuid.UUID) {
	_, guard, err := s.reservations.FindByID(s.ctx, id)
	s.Require().NoError(err)
	s.Require().True(guard.TryLock(), "guard must be released")
	guard.Unlock()
}

func (s *ReservationCommandsTestSuite) notification(kind reservation.NotificationKind, recipient, reservationID uuid.UUID) reservation.Notification {
	return reservation.Notification{
		Kind:          kind,
		TenantID:      recipient,
		FlatID:        s.flat.ID(),
		ReservationID: reservationID,
		OccurredAt:    now,
	}
}

// ================================================================================
// End-to-end lifecycle
// ================================================================================

func (s *ReservationCommandsTestSuite) TestFullLifecycle() {
	slot := s.saveSlot(reservation.StatusFree, uuid.Nil, now.Add(9*24*time.Hour))

	gomock.InOrder(
		s.notifier.EXPECT().Notify(gomock.Any(), s.notification(reservation.NotificationCreated, s.owner.ID(), slot.ID())).Return(nil),
		s.notifier.EXPECT().Notify(gomock.Any(), s.notification(reservation.NotificationApproved, s.visitor.ID(), slot.ID())).Return(nil),
		s.notifier.EXPECT().Notify(gomock.Any(), s.notification(reservation.NotificationCanceled, s.owner.ID(), slot.ID())).Return(nil),
	)

	result, err := s.cmds.Reserve(s.ctx, slot.ID(), s.visitor.ID())
	s.Require().NoError(err)
	s.True(result.Applied)
	current := s.stored(slot.ID())
	s.Equal(reservation.StatusReserved, current.Status())
	s.True(current.IsOccupiedBy(s.visitor.ID()))

	result, err = s.cmds.Approve(s.ctx, slot.ID(), s.owner.ID())
	s.Require().NoError(err)
	s.True(result.Applied)
	s.Equal(reservation.StatusApproved, s.stored(slot.ID()).Status())

	result, err = s.cmds.Cancel(s.ctx, slot.ID(), s.visitor.ID())
	s.Require().NoError(err)
	s.True(result.Applied)
	current = s.stored(slot.ID())
	s.Equal(reservation.StatusFree, current.Status())
	_, hasOccupant := current.OccupantID()
	s.False(hasOccupant)

	s.assertGuardReleased(slot.ID())
	s.Equal(observation{action: "cancel", outcome: metrics.OutcomeApplied}, s.recorder.last())
}

func (s *ReservationCommandsTestSuite) TestReject_NotifiesPreviousOccupant() {
	slot := s.saveSlot(reservation.StatusReserved, s.visitor.ID(), now.Add(72*time.Hour))
	s.notifier.EXPECT().
		Notify(gomock.Any(), s.notification(reservation.NotificationRejected, s.visitor.ID(), slot.ID())).
		Return(nil)

	result, err := s.cmds.Reject(s.ctx, slot.ID(), s.owner.ID())
	s.Require().NoError(err)
	s.True(result.Applied)

	current := s.stored(slot.ID())
	s.Equal(reservation.StatusRejected, current.Status())
	_, hasOccupant := current.OccupantID()
	s.False(hasOccupant)
}

// ================================================================================
// Failures leave the snapshot untouched
// ================================================================================

func (s *ReservationCommandsTestSuite) TestFailures() {
	far := now.Add(9 * 24 * time.Hour)

	cases := []struct {
		name    string
		status  reservation.Status
		slot    time.Time
		act     func(id uuid.UUID) (commands.ActionResult, error)
		errIs   error
		outcome string
	}{
		{
			name:   "owner reserves own flat",
			status: reservation.StatusFree,
			slot:   far,
			act: func(id uuid.UUID) (commands.ActionResult, error) {
				return s.cmds.Reserve(s.ctx, id, s.owner.ID())
			},
			errIs:   errs.ErrAuthorization,
			outcome: metrics.OutcomeForbidden,
		},
		{
			name:   "reserve inside notice period",
			status: reservation.StatusFree,
			slot:   now.Add(23 * time.Hour),
			act: func(id uuid.UUID) (commands.ActionResult, error) {
				return s.cmds.Reserve(s.ctx, id, s.visitor.ID())
			},
			errIs:   errs.ErrValidation,
			outcome: metrics.OutcomeInvalid,
		},
		{
			name:   "approve by non-owner",
			status: reservation.StatusReserved,
			slot:   far,
			act: func(id uuid.UUID) (commands.ActionResult, error) {
				return s.cmds.Approve(s.ctx, id, s.visitor.ID())
			},
			errIs:   errs.ErrAuthorization,
			outcome: metrics.OutcomeForbidden,
		},
		{
			name:   "cancel by non-occupant",
			status: reservation.StatusApproved,
			slot:   far,
			act: func(id uuid.UUID) (commands.ActionResult, error) {
				return s.cmds.Cancel(s.ctx, id, s.stranger.ID())
			},
			errIs:   errs.ErrAuthorization,
			outcome: metrics.OutcomeForbidden,
		},
		{
			name:   "approve on FREE",
			status: reservation.StatusFree,
			slot:   far,
			act: func(id uuid.UUID) (commands.ActionResult, error) {
				return s.cmds.Approve(s.ctx, id, s.owner.ID())
			},
			errIs:   errs.ErrValidation,
			outcome: metrics.OutcomeInvalid,
		},
		{
			name:   "cancel on REJECTED",
			status: reservation.StatusRejected,
			slot:   far,
			act: func(id uuid.UUID) (commands.ActionResult, error) {
				return s.cmds.Cancel(s.ctx, id, s.visitor.ID())
			},
			errIs:   errs.ErrValidation,
			outcome: metrics.OutcomeInvalid,
		},
		{
			name:   "unknown acting tenant",
			status: reservation.StatusFree,
			slot:   far,
			act: func(id uuid.UUID) (commands.ActionResult, error) {
				return s.cmds.Reserve(s.ctx, id, uuid.New())
			},
			errIs:   errs.ErrNotFound,
			outcome: metrics.OutcomeNotFound,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			occupant := uuid.Nil
			if tc.status.HasOccupant() {
				occupant = s.visitor.ID()
			}
			before := s.saveSlot(tc.status, occupant, tc.slot)

			result, err := tc.act(before.ID())
			s.Require().Error(err)
			s.True(errors.Is(err, tc.errIs), "got %v", err)
			s.False(result.Applied)

			after := s.stored(before.ID())
			s.Equal(before, after)
			s.assertGuardReleased(before.ID())
			s.Equal(tc.outcome, s.recorder.last().outcome)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestUnknownReservation() {
	result, err := s.cmds.Cancel(s.ctx, uuid.New(), s.visitor.ID())

	s.Require().Error(err)
	s.False(result.Applied)
	var nf *errs.NotFoundError
	s.Require().True(errors.As(err, &nf))
	s.Equal(errs.KindReservation, nf.Kind)
}

func (s *ReservationCommandsTestSuite) TestUnknownFlat() {
	orphan := builder.NewReservationBuilder().BuildDomain()
	_, err := s.reservations.Save(s.ctx, orphan)
	s.Require().NoError(err)

	_, err = s.cmds.Reserve(s.ctx, orphan.ID(), s.visitor.ID())
	var nf *errs.NotFoundError
	s.Require().True(errors.As(err, &nf))
	s.Equal(errs.KindFlat, nf.Kind)
	s.assertGuardReleased(orphan.ID())
}

// ================================================================================
// Notifications never fail the action
// ================================================================================

func (s *ReservationCommandsTestSuite) TestNotifierFailureIsSwallowed() {
	slot := s.saveSlot(reservation.StatusFree, uuid.Nil, now.Add(72*time.Hour))
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	result, err := s.cmds.Reserve(s.ctx, slot.ID(), s.visitor.ID())

	s.Require().NoError(err)
	s.True(result.Applied)
	s.Equal(reservation.StatusReserved, s.stored(slot.ID()).Status())
	s.assertGuardReleased(slot.ID())
}

// ================================================================================
// Busy
// ================================================================================

func (s *ReservationCommandsTestSuite) TestBusyWhenGuardHeld() {
	slot := s.saveSlot(reservation.StatusFree, uuid.Nil, now.Add(72*time.Hour))
	_, guard, err := s.reservations.FindByID(s.ctx, slot.ID())
	s.Require().NoError(err)
	s.Require().True(guard.TryLock())

	// no notification expected: the action must do nothing
	result, err := s.cmds.Reserve(s.ctx, slot.ID(), s.visitor.ID())
	s.Require().NoError(err)
	s.False(result.Applied)
	s.Equal(reservation.StatusFree, s.stored(slot.ID()).Status())
	s.Equal(observation{action: "reserve", outcome: metrics.OutcomeBusy}, s.recorder.last())

	guard.Unlock()
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	result, err = s.cmds.Reserve(s.ctx, slot.ID(), s.visitor.ID())
	s.Require().NoError(err)
	s.True(result.Applied)
}

func (s *ReservationCommandsTestSuite) TestConcurrentCancel() {
	const callers = 8
	slot := s.saveSlot(reservation.StatusApproved, s.visitor.ID(), now.Add(72*time.Hour))

	entered := make(chan struct{})
	release := make(chan struct{})
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, reservation.Notification) error {
			close(entered)
			<-release
			return nil
		}).Times(1)

	type outcome struct {
		result commands.ActionResult
		err    error
	}
	results := make(chan outcome, callers)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			r, err := s.cmds.Cancel(s.ctx, slot.ID(), s.visitor.ID())
			results <- outcome{result: r, err: err}
		}()
	}
	close(start)

	// The winner holds the guard inside Notify until every loser has answered.
	<-entered
	busy := 0
	for i := 0; i < callers-1; i++ {
		o := <-results
		s.Require().NoError(o.err)
		s.False(o.result.Applied)
		busy++
	}
	close(release)
	wg.Wait()

	winner := <-results
	s.Require().NoError(winner.err)
	s.True(winner.result.Applied)
	s.Equal(callers-1, busy)

	final := s.stored(slot.ID())
	s.Equal(reservation.StatusFree, final.Status())
	_, hasOccupant := final.OccupantID()
	s.False(hasOccupant)
	s.assertGuardReleased(slot.ID())
}

func (s *ReservationCommandsTestSuite) TestDifferentReservationsAreIndependent() {
	a := s.saveSlot(reservation.StatusFree, uuid.Nil, now.Add(72*time.Hour))
	b := s.saveSlot(reservation.StatusFree, uuid.Nil, now.Add(96*time.Hour))

	_, guardA, err := s.reservations.FindByID(s.ctx, a.ID())
	s.Require().NoError(err)
	s.Require().True(guardA.TryLock())
	defer guardA.Unlock()

	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	result, err := s.cmds.Reserve(s.ctx, b.ID(), s.visitor.ID())
	s.Require().NoError(err)
	s.True(result.Applied)
}

// interleavingStore runs interleave once, after the first lookup has taken
// its snapshot and before the caller gets it back.
type interleavingStore struct {
	*memstore.ReservationStore
	interleave func()
}

func (s *interleavingStore) FindByID(ctx context.Context, id uuid.UUID) (reservation.Reservation, reservation.Guard, error) {
	res, guard, err := s.ReservationStore.FindByID(ctx, id)
	if hook := s.interleave; hook != nil {
		s.interleave = nil
		hook()
	}
	return res, guard, err
}

func (s *ReservationCommandsTestSuite) TestActionAppliesToSnapshotReadUnderGuard() {
	tests := []struct {
		name       string
		status     reservation.Status
		occupant   func() uuid.UUID
		first      func(cmds commands.ReservationCommands, id uuid.UUID) (commands.ActionResult, error)
		second     func(cmds commands.ReservationCommands, id uuid.UUID) (commands.ActionResult, error)
		wantStatus reservation.Status
		wantHolder func() uuid.UUID
	}{
		{
			name:     "second reserve sees the slot already reserved",
			status:   reservation.StatusFree,
			occupant: func() uuid.UUID { return uuid.Nil },
			first: func(cmds commands.ReservationCommands, id uuid.UUID) (commands.ActionResult, error) {
				return cmds.Reserve(s.ctx, id, s.visitor.ID())
			},
			second: func(cmds commands.ReservationCommands, id uuid.UUID) (commands.ActionResult, error) {
				return cmds.Reserve(s.ctx, id, s.stranger.ID())
			},
			wantStatus: reservation.StatusReserved,
			wantHolder: func() uuid.UUID { return s.visitor.ID() },
		},
		{
			name:     "late reject does not overwrite an approval",
			status:   reservation.StatusReserved,
			occupant: func() uuid.UUID { return s.visitor.ID() },
			first: func(cmds commands.ReservationCommands, id uuid.UUID) (commands.ActionResult, error) {
				return cmds.Approve(s.ctx, id, s.owner.ID())
			},
			second: func(cmds commands.ReservationCommands, id uuid.UUID) (commands.ActionResult, error) {
				return cmds.Reject(s.ctx, id, s.owner.ID())
			},
			wantStatus: reservation.StatusApproved,
			wantHolder: func() uuid.UUID { return s.visitor.ID() },
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			slot := s.saveSlot(tt.status, tt.occupant(), now.Add(72*time.Hour))
			store := &interleavingStore{ReservationStore: s.reservations}
			clk := clock.NewMockClock(now)
			cmds := commands.NewReservationCommands(
				store, s.tenants, s.flats, s.notifier,
				reservation.NewLifecycle(clk, 24*time.Hour),
				s.recorder, clk, discardLogger(),
			)

			s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)

			var firstResult commands.ActionResult
			var firstErr error
			store.interleave = func() {
				firstResult, firstErr = tt.first(cmds, slot.ID())
			}

			result, err := tt.second(cmds, slot.ID())

			s.Require().NoError(firstErr)
			s.True(firstResult.Applied)
			s.Require().Error(err)
			s.True(errors.Is(err, errs.ErrValidation))
			s.False(result.Applied)

			final := s.stored(slot.ID())
			s.Equal(tt.wantStatus, final.Status())
			holder, ok := final.OccupantID()
			s.True(ok)
			s.Equal(tt.wantHolder(), holder)
			s.assertGuardReleased(slot.ID())
		})
	}
}
