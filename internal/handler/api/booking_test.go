//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/handler/api"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/tests/common/builder"
	"meeting-scheduler/tests/common/httptest"
	"meeting-scheduler/tests/common/testutil"
	commandsmock "meeting-scheduler/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/links/:slug/bookings", s.handler.Create)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/links/intro-call/bookings"

	b := builder.NewBookingBuilder().WithNotes("Quarterly review")
	reqBody := b.BuildCreateRequestDTO()
	created, err := b.BuildStored()
	s.Require().NoError(err)
	result := &commands.CreateBookingResult{Booking: created, CancelToken: "signed-token"}

	s.Run("success: returns 201 Created with cancel token and Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "intro-call", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req commands.BookingRequest) (*commands.CreateBookingResult, error) {
				s.True(req.Start.Equal(b.Start))
				s.True(req.End.Equal(b.End))
				s.Equal(b.Email, req.Email)
				s.Equal(b.Timezone, req.Timezone)
				s.Equal("Quarterly review", req.Notes)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("signed-token", body.CancelToken)
		s.Equal(string(booking.StatusConfirmed), body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location": "/api/links/intro-call/bookings/" + created.ID().String(),
		})
	})

	s.Run("success: times are rendered in the requester timezone", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "intro-call", gomock.Any()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		ny, err := time.LoadLocation("America/New_York")
		s.Require().NoError(err)
		_, wantOffset := created.Start().In(ny).Zone()
		_, gotOffset := body.Start.Zone()
		s.Equal(wantOffset, gotOffset)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
			{name: "start is not a timestamp", mutate: testutil.Field("start", "tomorrow"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot taken by a concurrent booking",
				commandsError:  errs.Mark(errors.New("duplicate key"), errs.ErrSlotUnavailable),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "This time slot is no longer available",
			},
			{
				name:           "slot no longer offered",
				commandsError:  errs.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "This time slot is no longer available",
			},
			{
				name:           "invalid requester",
				commandsError:  errs.Mark(booking.ErrInvalidEmail, errs.ErrInvalidBooking),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid booking",
			},
			{
				name:           "inactive link",
				commandsError:  errs.ErrLinkInactive,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Scheduling link not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), "intro-call", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 422 carries the validation reason", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "intro-call", gomock.Any()).
			Return(nil, errs.Mark(booking.ErrNameRequired, errs.ErrInvalidBooking)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid booking")
		httptest.AssertErrorDetail(s.T(), rec, "name is required")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"
	reqBody := map[string]any{"token": "signed-token"}

	s.Run("success: returns 200 when cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, "signed-token").
			Return(&commands.CancelBookingResult{BookingID: id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("cancelled", body.Status)
		s.False(body.AlreadyCancelled)
	})

	s.Run("success: cancelling twice is not an error", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, "signed-token").
			Return(&commands.CancelBookingResult{BookingID: id, AlreadyCancelled: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.AlreadyCancelled)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/123/cancel", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request when token is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "token for another booking",
				commandsError:  errs.ErrInvalidCancelToken,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Invalid or expired cancellation link",
			},
			{
				name:           "unknown booking",
				commandsError:  errs.Mark(errors.New("no rows"), errs.ErrBookingNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), id, "signed-token").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
