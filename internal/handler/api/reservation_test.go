//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/handler/api"
	resdto "flat-reservation/internal/handler/dto/response"
	"flat-reservation/internal/pkg/errs"
	"flat-reservation/internal/usecase/commands"
	"flat-reservation/tests/common/builder"
	"flat-reservation/tests/common/httptest"
	"flat-reservation/tests/common/testutil"
	commandsmock "flat-reservation/tests/mock/commands"
	queriesmock "flat-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.PUT("/reservations/reserve", s.handler.Reserve)
	s.router.PUT("/reservations/approve", s.handler.Approve)
	s.router.PUT("/reservations/reject", s.handler.Reject)
	s.router.PUT("/reservations/cancel", s.handler.Cancel)
	s.router.GET("/reservations/:id", s.handler.Get)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type actionCase struct {
	path   string
	expect func(reservationID, tenantID uuid.UUID) *gomock.Call
}

func (s *ReservationHandlerTestSuite) actions() []actionCase {
	return []actionCase{
		{path: "/reservations/reserve", expect: func(r, t uuid.UUID) *gomock.Call { return s.mockCommands.EXPECT().Reserve(gomock.Any(), r, t) }},
		{path: "/reservations/approve", expect: func(r, t uuid.UUID) *gomock.Call { return s.mockCommands.EXPECT().Approve(gomock.Any(), r, t) }},
		{path: "/reservations/reject", expect: func(r, t uuid.UUID) *gomock.Call { return s.mockCommands.EXPECT().Reject(gomock.Any(), r, t) }},
		{path: "/reservations/cancel", expect: func(r, t uuid.UUID) *gomock.Call { return s.mockCommands.EXPECT().Cancel(gomock.Any(), r, t) }},
	}
}

// ================================================================================
// TestActions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestActions() {
	b := builder.NewReservationBuilder()
	tenantID := uuid.New()
	reqBody := b.BuildModifyRequestDTO(tenantID)

	for _, a := range s.actions() {
		s.Run("success: 200 applied "+a.path, func() {
			a.expect(b.ID, tenantID).Return(commands.ActionResult{Applied: true}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, a.path, reqBody, tenantID.String())

			var body resdto.ActionResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.True(body.Applied)
			httptest.AssertNoHeader(s.T(), rec, "Retry-After")
		})

		s.Run("busy: 409 with retry hint "+a.path, func() {
			a.expect(b.ID, tenantID).Return(commands.ActionResult{Applied: false}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, a.path, reqBody, "")

			s.Equal(http.StatusConflict, rec.Code)
			httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": api.RetryAfterSeconds})
			body := testutil.Decode[map[string]any](s.T(), rec.Body.Bytes())
			s.Equal(map[string]any{"applied": false}, body)
		})
	}
}

func (s *ReservationHandlerTestSuite) TestActions_ErrorMapping() {
	b := builder.NewReservationBuilder()
	tenantID := uuid.New()
	reqBody := b.BuildModifyRequestDTO(tenantID)

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "reservation not found",
			err:            errs.NewNotFound(errs.KindReservation, b.ID),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Reservation with id = " + b.ID.String() + " is not found",
		},
		{
			name:           "tenant not found",
			err:            errs.NewNotFound(errs.KindTenant, tenantID),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Tenant with id",
		},
		{
			name:           "authorization",
			err:            errs.NewAuthorization("owner cannot reserve own flat"),
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Forbidden",
		},
		{
			name:           "validation keeps reason",
			err:            errs.NewValidation("illegal transition for current status: cannot approve a FREE reservation"),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "illegal transition",
		},
		{
			name:           "store failure",
			err:            errs.Mark(errors.New("boom"), commands.ErrStoreOperationFailed),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal server error",
		},
	}

	for _, a := range s.actions() {
		for _, tc := range testCases {
			s.Run(a.path+" "+tc.name, func() {
				a.expect(b.ID, tenantID).Return(commands.ActionResult{}, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, a.path, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	}
}

func (s *ReservationHandlerTestSuite) TestActions_BadRequest() {
	reqBody := builder.NewReservationBuilder().BuildModifyRequestDTO(uuid.New())

	cases := []struct {
		name   string
		mutate func(map[string]any)
		msg    string
	}{
		{name: "missing reservationId", mutate: testutil.Field("reservationId", nil), msg: "Invalid request"},
		{name: "missing tenantId", mutate: testutil.Field("tenantId", nil), msg: "Invalid request"},
		{name: "nil reservationId", mutate: testutil.Field("reservationId", uuid.Nil.String()), msg: "Invalid request"},
		{name: "malformed tenantId", mutate: testutil.Field("tenantId", "not-a-uuid"), msg: "Invalid request format"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/reserve", body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	occupant := uuid.New()
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusApproved, occupant)

	s.Run("success: 200 with snapshot", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+b.ID.String(), nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID, body.ID)
		s.Equal(b.FlatID, body.FlatID)
		s.Equal("APPROVED", body.Status)
		s.True(body.SlotTime.Equal(b.SlotTime))
		s.Require().NotNil(body.OccupantTenantID)
		s.Equal(occupant, *body.OccupantTenantID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when unknown", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.NewNotFound(errs.KindReservation, id)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "is not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

