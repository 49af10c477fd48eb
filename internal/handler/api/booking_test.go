//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"chargeway/internal/handler/api"
	reqdto "chargeway/internal/handler/dto/request"
	"chargeway/internal/usecase/commands"
	"chargeway/internal/usecase/queries"
	"chargeway/tests/common/httptest"
	commandsmock "chargeway/tests/mock/commands"
	queriesmock "chargeway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testClientID      = int64(42)
	testUpstreamToken = "upstream-token"
)

// fakeAuth stands in for the auth middleware: requests carrying an
// Authorization header get a caller identity, bare requests do not.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") != "" {
		c.Set("client_id", testClientID)
		c.Set("upstream_token", testUpstreamToken)
	}
	c.Next()
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(fakeAuth)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.POST("/bookings/selection/toggle", s.handler.ToggleSelection)
	s.router.GET("/reservations", s.handler.ListReservations)
	s.router.PUT("/reservations/:id/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func testGrid() reqdto.GridContext {
	return reqdto.GridContext{
		StationID:     3,
		ConnectorID:   7,
		Day:           10,
		Month:         9,
		Year:          2026,
		ChargePercent: 40,
	}
}

func (s *BookingHandlerTestSuite) TestToggleSelection() {
	url := "/bookings/selection/toggle"
	reqBody := reqdto.ToggleSelectionRequest{Grid: testGrid(), Selection: []int{4, 5}, Index: 6}

	s.Run("success: returns the recomputed selection", func() {
		s.mockCommands.EXPECT().
			ToggleSelection(gomock.Any(), testUpstreamToken, testClientID, reqBody).
			Return(&commands.SelectionResult{Selection: []int{4, 5, 6}, DurationMin: 90, TotalPrice: 13.5}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response commands.SelectionResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]int{4, 5, 6}, response.Selection)
		s.Equal(90, response.DurationMin)
	})

	s.Run("error: 401 without caller identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 404 when the connector is unknown", func() {
		s.mockCommands.EXPECT().
			ToggleSelection(gomock.Any(), testUpstreamToken, testClientID, reqBody).
			Return(nil, queries.ErrConnectorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Station or connector not found")
	})

	s.Run("error: 400 on missing grid context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"index": 6}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := reqdto.CreateBookingRequest{Grid: testGrid(), Selection: []int{4, 5, 6}}

	s.Run("success: returns 201 with the reservation", func() {
		startsAt := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), testUpstreamToken, testClientID, reqBody).
			Return(&queries.ReservationView{
				ID:             101,
				StartsAt:       startsAt,
				ExpiresAt:      startsAt.Add(90 * time.Minute),
				EstimatedPrice: 13.5,
				Status:         "UPCOMING",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(101), response.ID)
		s.Equal("UPCOMING", response.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "another booking in flight",
				commandsError:  commands.ErrBookingInFlight,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already being processed",
			},
			{
				name:           "slots taken upstream",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "just taken",
			},
			{
				name:           "empty selection",
				commandsError:  commands.ErrEmptySelection,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Selection is empty",
			},
			{
				name:           "gapped selection",
				commandsError:  commands.ErrSelectionNotContiguous,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "contiguous",
			},
			{
				name:           "reserved slot in selection",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "unavailable",
			},
			{
				name:           "index past the grid",
				commandsError:  commands.ErrSlotIndexOutOfRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "out of range",
			},
			{
				name:           "unknown station",
				commandsError:  queries.ErrStationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
			{
				name:           "platform unreachable",
				commandsError:  errors.New("connection refused"),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Failed to create booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), testUpstreamToken, testClientID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 when selection is missing", func() {
		body := map[string]any{"grid": testGrid()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestListReservations() {
	url := "/reservations"

	s.Run("success: forwards the status filter", func() {
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), testUpstreamToken, "UPCOMING").
			Return([]queries.ReservationView{{ID: 1, Status: "UPCOMING"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=UPCOMING", nil, "bearer-token")

		var response []queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 502 when the platform fails", func() {
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), testUpstreamToken, "").
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to load reservations")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), testUpstreamToken, int64(101)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/101/cancel", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown reservation", func() {
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), testUpstreamToken, int64(999)).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/999/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 for a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/abc/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})
}
