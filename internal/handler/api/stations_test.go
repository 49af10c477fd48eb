//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"chargeway/internal/handler/api"
	"chargeway/internal/usecase/queries"
	"chargeway/tests/common/httptest"
	queriesmock "chargeway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockStationQueries
	handler     *api.StationHandler
}

func (s *StationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(fakeAuth)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockStationQueries(s.mockCtrl)
	s.handler = api.NewStationHandler(s.mockQueries)

	s.router.GET("/stations", s.handler.List)
	s.router.GET("/stations/:id", s.handler.Get)
}

func (s *StationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStationHandlerSuite(t *testing.T) {
	suite.Run(t, new(StationHandlerTestSuite))
}

func (s *StationHandlerTestSuite) TestList() {
	s.Run("success: returns the station list", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), testUpstreamToken).
			Return([]queries.StationListItem{
				{ID: 1, Name: "Downtown", Latitude: 36.8, Longitude: 10.18, Available: true, ConnectorCount: 4},
				{ID: 2, Name: "Airport", Latitude: 36.85, Longitude: 10.22, ConnectorCount: 2},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations", nil, "bearer-token")

		var response []queries.StationListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Downtown", response[0].Name)
	})

	s.Run("error: 401 without caller identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 502 when the platform fails", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), testUpstreamToken).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to load stations")
	})
}

func (s *StationHandlerTestSuite) TestGet() {
	s.Run("success: returns the station with connector rates", func() {
		s.mockQueries.EXPECT().
			Get(gomock.Any(), testUpstreamToken, int64(3)).
			Return(&queries.StationView{
				ID: 3, Name: "Downtown",
				PriceAC: 0.45, PriceDC: 0.80,
				OpenHour: 8, CloseHour: 24,
				ChargePoints: []queries.ChargePointView{
					{ID: 1, Region: "Tunis", Availability: true, Connectors: []queries.ConnectorView{
						{ID: 7, CurrentType: "AC", PowerKW: 22, Rate: 0.45},
					}},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations/3", nil, "bearer-token")

		var response queries.StationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(3), response.ID)
		s.Require().Len(response.ChargePoints, 1)
		s.Equal(0.45, response.ChargePoints[0].Connectors[0].Rate)
	})

	s.Run("error: 404 for an unknown station", func() {
		s.mockQueries.EXPECT().
			Get(gomock.Any(), testUpstreamToken, int64(99)).
			Return(nil, queries.ErrStationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations/99", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Station not found")
	})

	s.Run("error: 400 for a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid station id")
	})
}
