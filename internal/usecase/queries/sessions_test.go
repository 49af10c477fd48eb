//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"chargeway/internal/pkg/clock"
	"chargeway/internal/upstream"
	"chargeway/internal/usecase/queries"
	queriesmock "chargeway/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *queriesmock.MockSessionGateway
	clk         *clock.FixedClock
	queries     queries.SessionQueries
}

func (s *SessionQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = queriesmock.NewMockSessionGateway(s.mockCtrl)
	s.clk = clock.NewFixedClock(time.Date(2026, 9, 10, 10, 30, 0, 0, time.UTC))
	s.queries = queries.NewSessionQueries(s.mockGateway, s.clk)
}

func (s *SessionQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionQueriesSuite(t *testing.T) {
	suite.Run(t, new(SessionQueriesTestSuite))
}

func (s *SessionQueriesTestSuite) runningReservation() *upstream.Reservation {
	sessionID := int64(12)
	return &upstream.Reservation{
		ID:             5,
		StartsAt:       time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC),
		ExpiresAt:      time.Date(2026, 9, 10, 11, 0, 0, 0, time.UTC),
		EstimatedPrice: 9.9,
		Status:         "IN_PROGRESS",
		SessionID:      &sessionID,
	}
}

func (s *SessionQueriesTestSuite) TestActiveInterpolatesProgress() {
	s.mockGateway.EXPECT().
		ActiveReservation(gomock.Any(), "token").
		Return(s.runningReservation(), nil)

	view, err := s.queries.Active(context.Background(), "token", 22)

	s.Require().NoError(err)
	s.Require().NotNil(view)
	s.Equal(int64(5), view.ReservationID)
	s.Equal("IN_PROGRESS", view.Status)
	// 30 of 60 minutes elapsed: halfway from 20% to 100%.
	s.Equal(60, view.BatteryPercent)
	s.Equal("00:30:00", view.TimeElapsed)
	s.Equal("00:30:00", view.TimeRemaining)
	s.InDelta(11.0, view.EnergyKWh, 0.001)
	s.False(view.Done)
}

func (s *SessionQueriesTestSuite) TestActiveReportsDoneAfterSpan() {
	s.mockGateway.EXPECT().
		ActiveReservation(gomock.Any(), "token").
		Return(s.runningReservation(), nil)

	s.clk.Advance(45 * time.Minute)
	view, err := s.queries.Active(context.Background(), "token", 22)

	s.Require().NoError(err)
	s.Equal(100, view.BatteryPercent)
	s.Equal("00:00:00", view.TimeRemaining)
	s.True(view.Done)
}

func (s *SessionQueriesTestSuite) TestActiveDefaultsPowerRating() {
	s.mockGateway.EXPECT().
		ActiveReservation(gomock.Any(), "token").
		Return(s.runningReservation(), nil)

	view, err := s.queries.Active(context.Background(), "token", 0)

	s.Require().NoError(err)
	s.InDelta(11.0, view.EnergyKWh, 0.001)
}

func (s *SessionQueriesTestSuite) TestActiveNilWhenIdle() {
	s.mockGateway.EXPECT().
		ActiveReservation(gomock.Any(), "token").
		Return(nil, nil)

	view, err := s.queries.Active(context.Background(), "token", 22)

	s.Require().NoError(err)
	s.Nil(view)
}

func (s *SessionQueriesTestSuite) TestActiveKeepsCompletedOverStalePoll() {
	completed := s.runningReservation()
	completed.Status = "COMPLETED"
	stale := s.runningReservation()

	gomock.InOrder(
		s.mockGateway.EXPECT().
			ActiveReservation(gomock.Any(), "token").
			Return(completed, nil),
		s.mockGateway.EXPECT().
			ActiveReservation(gomock.Any(), "token").
			Return(stale, nil),
	)

	first, err := s.queries.Active(context.Background(), "token", 22)
	s.Require().NoError(err)
	s.Equal("COMPLETED", first.Status)

	second, err := s.queries.Active(context.Background(), "token", 22)
	s.Require().NoError(err)
	s.Equal("COMPLETED", second.Status)
}

func (s *SessionQueriesTestSuite) TestActiveEvictsFinishedTrackers() {
	completed := s.runningReservation()
	completed.Status = "COMPLETED"
	stale := s.runningReservation()

	gomock.InOrder(
		s.mockGateway.EXPECT().
			ActiveReservation(gomock.Any(), "token").
			Return(completed, nil),
		s.mockGateway.EXPECT().
			ActiveReservation(gomock.Any(), "token").
			Return(stale, nil),
	)

	first, err := s.queries.Active(context.Background(), "token", 22)
	s.Require().NoError(err)
	s.Equal("COMPLETED", first.Status)

	// Past the retention window the finished tracker is dropped, so the next
	// poll is taken at face value again.
	s.clk.Advance(2 * time.Minute)
	second, err := s.queries.Active(context.Background(), "token", 22)
	s.Require().NoError(err)
	s.Equal("IN_PROGRESS", second.Status)
}
