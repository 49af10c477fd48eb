package queries

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"chargeway/internal/domain/schedule"
	"chargeway/internal/domain/session"
	"chargeway/internal/pkg/clock"
	"chargeway/internal/upstream"
)

// trackerRetention bounds how long a finished reservation's tracker is kept
// around to absorb stale poll results before it is dropped.
const trackerRetention = time.Minute

type SessionGateway interface {
	ActiveReservation(ctx context.Context, token string) (*upstream.Reservation, error)
}

type SessionQueries interface {
	Active(ctx context.Context, token string, powerKW float64) (*ActiveSessionView, error)
}

type sessionQueriesImpl struct {
	gateway SessionGateway
	clk     clock.Clock

	// trackers pin each polled reservation's lifecycle so a stale poll result
	// cannot move the displayed status backwards. Finished entries are swept
	// after trackerRetention so the map stays bounded.
	mu       sync.Mutex
	trackers map[int64]*trackedSession
}

type trackedSession struct {
	tracker *session.Tracker
	doneAt  time.Time
}

func NewSessionQueries(gateway SessionGateway, clk clock.Clock) SessionQueries {
	return &sessionQueriesImpl{
		gateway:  gateway,
		clk:      clk,
		trackers: make(map[int64]*trackedSession),
	}
}

// Active returns the in-progress charging view, or nil when no session is
// running. Battery level and remaining time are interpolated from the
// reservation span rather than read from the vehicle.
func (q *sessionQueriesImpl) Active(ctx context.Context, token string, powerKW float64) (*ActiveSessionView, error) {
	resv, err := q.gateway.ActiveReservation(ctx, token)
	if err != nil {
		return nil, err
	}
	if resv == nil {
		return nil, nil
	}

	status := q.observe(ctx, resv.ID, schedule.Status(resv.Status))

	progress, err := session.Compute(resv.StartsAt, resv.ExpiresAt, q.clk.Now(), session.DefaultInitialPercent)
	if err != nil {
		return nil, err
	}
	if powerKW <= 0 {
		powerKW = session.DefaultPowerKW
	}

	return &ActiveSessionView{
		ReservationID:  resv.ID,
		SessionID:      resv.SessionID,
		StartsAt:       resv.StartsAt,
		ExpiresAt:      resv.ExpiresAt,
		Status:         string(status),
		EstimatedPrice: resv.EstimatedPrice,
		BatteryPercent: progress.BatteryPercent,
		TimeElapsed:    session.FormatClock(progress.Elapsed),
		TimeRemaining:  session.FormatClock(progress.Remaining),
		EnergyKWh:      progress.EnergyKWh(powerKW),
		Done:           progress.Done,
	}, nil
}

func (q *sessionQueriesImpl) observe(ctx context.Context, reservationID int64, polled schedule.Status) schedule.Status {
	now := q.clk.Now()

	q.mu.Lock()
	defer q.mu.Unlock()

	for id, entry := range q.trackers {
		if !entry.doneAt.IsZero() && now.Sub(entry.doneAt) >= trackerRetention {
			delete(q.trackers, id)
		}
	}

	entry, ok := q.trackers[reservationID]
	if !ok {
		entry = &trackedSession{tracker: session.NewTracker(polled)}
		q.trackers[reservationID] = entry
	}

	if err := entry.tracker.Observe(ctx, polled); err != nil {
		if errors.Is(err, session.ErrIllegalTransition) {
			slog.Warn("ignoring out-of-order session status", "reservation_id", reservationID, "polled", string(polled))
		}
	}

	current := entry.tracker.Current()
	if entry.doneAt.IsZero() && current.Terminal() {
		entry.doneAt = now
	}
	return current
}
