//go:build unit

package queries_test

import (
	"context"
	"testing"

	"chargeway/internal/infra"
	"chargeway/internal/pkg/config"
	"chargeway/internal/upstream"
	"chargeway/internal/usecase/queries"
	queriesmock "chargeway/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StationQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *queriesmock.MockStationGateway
	mockCache   *queriesmock.MockStationCache
	queries     queries.StationQueries
}

func (s *StationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = queriesmock.NewMockStationGateway(s.mockCtrl)
	s.mockCache = queriesmock.NewMockStationCache(s.mockCtrl)
	s.queries = queries.NewStationQueries(s.mockGateway, s.mockCache, config.NewTestConfig())
}

func (s *StationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStationQueriesSuite(t *testing.T) {
	suite.Run(t, new(StationQueriesTestSuite))
}

func testStation() upstream.Station {
	price := 0.6
	return upstream.Station{
		ID:          3,
		Name:        "Downtown",
		Coordinates: "36.8, 10.18",
		Config:      upstream.StationConfig{PriceAC: 0.45, PriceDC: 0.80},
		ChargePoints: []upstream.ChargePoint{
			{ID: 1, Region: "Tunis", Availability: true, Connectors: []upstream.Connector{
				{ID: 7, CurrentType: "ac", Power: 22},
				{ID: 8, CurrentType: "DC", Power: 50, Price: &price},
			}},
			{ID: 2, Region: "Tunis", Availability: false, Connectors: []upstream.Connector{
				{ID: 9, CurrentType: "AC", Power: 11},
			}},
		},
	}
}

func (s *StationQueriesTestSuite) TestList() {
	ctx := context.Background()

	s.Run("cache hit skips the gateway", func() {
		s.mockCache.EXPECT().GetAll(ctx).Return([]upstream.Station{testStation()}, true).Times(1)

		items, err := s.queries.List(ctx, "upstream-token")
		s.Require().NoError(err)
		s.Require().Len(items, 1)
		s.Equal("Downtown", items[0].Name)
		s.Equal(36.8, items[0].Latitude)
		s.Equal(10.18, items[0].Longitude)
		s.True(items[0].Available)
		s.Equal(3, items[0].ConnectorCount)
	})

	s.Run("cache miss fetches upstream and backfills", func() {
		stations := []upstream.Station{testStation()}
		s.mockCache.EXPECT().GetAll(ctx).Return(nil, false).Times(1)
		s.mockGateway.EXPECT().Stations(ctx, "upstream-token").Return(stations, nil).Times(1)
		s.mockCache.EXPECT().SetAll(ctx, stations).Times(1)

		items, err := s.queries.List(ctx, "upstream-token")
		s.Require().NoError(err)
		s.Len(items, 1)
	})

	s.Run("malformed coordinates fall back to the origin", func() {
		station := testStation()
		station.Coordinates = "not-a-pair"
		s.mockCache.EXPECT().GetAll(ctx).Return([]upstream.Station{station}, true).Times(1)

		items, err := s.queries.List(ctx, "upstream-token")
		s.Require().NoError(err)
		s.Require().Len(items, 1)
		s.Zero(items[0].Latitude)
		s.Zero(items[0].Longitude)
	})

	s.Run("gateway failure surfaces unchanged", func() {
		wantErr := infra.WrapUpstreamErr(nil, infra.KindUpstreamFailure, "boom", nil)
		s.mockCache.EXPECT().GetAll(ctx).Return(nil, false).Times(1)
		s.mockGateway.EXPECT().Stations(ctx, "upstream-token").Return(nil, wantErr).Times(1)

		_, err := s.queries.List(ctx, "upstream-token")
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindUpstreamFailure))
	})
}

func (s *StationQueriesTestSuite) TestGet() {
	ctx := context.Background()

	s.Run("resolves connector rates from the station tariff", func() {
		station := testStation()
		s.mockCache.EXPECT().Get(ctx, int64(3)).Return(&station, true).Times(1)

		view, err := s.queries.Get(ctx, "upstream-token", 3)
		s.Require().NoError(err)
		s.Require().Len(view.ChargePoints, 2)

		conns := view.ChargePoints[0].Connectors
		s.Require().Len(conns, 2)
		// Lowercase current type is normalized before the tariff lookup.
		s.Equal("AC", conns[0].CurrentType)
		s.Equal(0.45, conns[0].Rate)
		// Per-connector price wins over the station tariff.
		s.Equal(0.6, conns[1].Rate)
	})

	s.Run("applies the default operating window", func() {
		station := testStation()
		s.mockCache.EXPECT().Get(ctx, int64(3)).Return(&station, true).Times(1)

		view, err := s.queries.Get(ctx, "upstream-token", 3)
		s.Require().NoError(err)
		s.Equal(8, view.OpenHour)
		s.Equal(24, view.CloseHour)
	})

	s.Run("per-station hours override the default", func() {
		station := testStation()
		open, close := 6, 22
		station.Config.OpenHour = &open
		station.Config.CloseHour = &close
		s.mockCache.EXPECT().Get(ctx, int64(3)).Return(&station, true).Times(1)

		view, err := s.queries.Get(ctx, "upstream-token", 3)
		s.Require().NoError(err)
		s.Equal(6, view.OpenHour)
		s.Equal(22, view.CloseHour)
	})

	s.Run("cache miss fetches upstream and backfills", func() {
		station := testStation()
		s.mockCache.EXPECT().Get(ctx, int64(3)).Return(nil, false).Times(1)
		s.mockGateway.EXPECT().Station(ctx, "upstream-token", int64(3)).Return(&station, nil).Times(1)
		s.mockCache.EXPECT().Set(ctx, &station).Times(1)

		view, err := s.queries.Get(ctx, "upstream-token", 3)
		s.Require().NoError(err)
		s.Equal(int64(3), view.ID)
	})

	s.Run("upstream 404 maps to ErrStationNotFound", func() {
		s.mockCache.EXPECT().Get(ctx, int64(99)).Return(nil, false).Times(1)
		s.mockGateway.EXPECT().Station(ctx, "upstream-token", int64(99)).
			Return(nil, infra.WrapUpstreamErr(nil, infra.KindNotFound, "no such station", nil)).Times(1)

		_, err := s.queries.Get(ctx, "upstream-token", 99)
		s.Require().ErrorIs(err, queries.ErrStationNotFound)
	})
}
