package queries

import (
	"context"
	"strings"
	"time"

	"chargeway/internal/domain/booking"
	"chargeway/internal/domain/schedule"
	"chargeway/internal/infra"
	"chargeway/internal/pkg/clock"
	"chargeway/internal/pkg/config"
	"chargeway/internal/pkg/errs"
	"chargeway/internal/upstream"
)

var ErrConnectorNotFound = errs.New("connector not found on station")

type ReservationGateway interface {
	ConnectorReservations(ctx context.Context, token string, clientID, connectorID int64) ([]upstream.Reservation, error)
}

type AvailabilityQueries interface {
	Grid(ctx context.Context, token string, clientID, stationID, connectorID int64, day, month, year, chargePercent int) (*AvailabilityView, error)
	Calendar(cursor schedule.Cursor) (*CalendarView, error)
}

type availabilityQueriesImpl struct {
	stations     StationGateway
	reservations ReservationGateway
	clk          clock.Clock
	booking      config.BookingConfig
}

func NewAvailabilityQueries(stations StationGateway, reservations ReservationGateway, clk clock.Clock, cfg config.Config) AvailabilityQueries {
	return &availabilityQueriesImpl{
		stations:     stations,
		reservations: reservations,
		clk:          clk,
		booking:      cfg.Booking,
	}
}

// Grid computes the half-hour slot grid for one connector and service day.
// Reservation state is fetched fresh on every call; nothing here is cached,
// so a slot taken by another client shows up on the next render.
func (q *availabilityQueriesImpl) Grid(ctx context.Context, token string, clientID, stationID, connectorID int64, day, month, year, chargePercent int) (*AvailabilityView, error) {
	if err := schedule.ValidateDate(day, month, year); err != nil {
		return nil, err
	}
	level, err := booking.NewChargeLevel(chargePercent)
	if err != nil {
		return nil, err
	}

	station, err := q.stations.Station(ctx, token, stationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}

	connector, found := findConnector(station, connectorID)
	if !found {
		return nil, ErrConnectorNotFound
	}

	rate, err := booking.ResolveRate(connector.Price, booking.CurrentType(strings.ToUpper(connector.CurrentType)), station.Config.PriceAC, station.Config.PriceDC)
	if err != nil {
		return nil, err
	}

	open, close := operatingHours(station, q.booking)
	window, err := schedule.NewWindow(open, close)
	if err != nil {
		return nil, err
	}

	upstreamResvs, err := q.reservations.ConnectorReservations(ctx, token, clientID, connectorID)
	if err != nil {
		return nil, err
	}

	loc, err := q.booking.Location()
	if err != nil {
		return nil, err
	}
	serviceDay := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	now := q.clk.Now().In(loc)

	slots, err := schedule.BuildSlots(serviceDay, window, rate, level.Percent(), blockingReservations(upstreamResvs, loc), now)
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		Day:       day,
		Month:     month,
		Year:      year,
		OpenHour:  window.OpenHour,
		CloseHour: window.CloseHour,
		Rate:      rate,
		Slots:     slots,
	}, nil
}

// Calendar renders the month grid for the cursor's position. Week selection
// stays client-driven through the cursor; the grid itself only depends on
// month, year and today's date.
func (q *availabilityQueriesImpl) Calendar(cursor schedule.Cursor) (*CalendarView, error) {
	loc, err := q.booking.Location()
	if err != nil {
		return nil, err
	}

	weeks, err := schedule.MonthGrid(cursor.Month, cursor.Year, q.clk.Now().In(loc))
	if err != nil {
		return nil, err
	}

	return &CalendarView{
		Month: cursor.Month,
		Year:  cursor.Year,
		Week:  cursor.Week,
		Weeks: weeks,
	}, nil
}

func findConnector(station *upstream.Station, connectorID int64) (upstream.Connector, bool) {
	for _, cp := range station.ChargePoints {
		for _, conn := range cp.Connectors {
			if conn.ID == connectorID {
				return conn, true
			}
		}
	}
	return upstream.Connector{}, false
}

// blockingReservations keeps only reservations that still occupy their slot
// span, converted into the booking timezone.
func blockingReservations(resvs []upstream.Reservation, loc *time.Location) []schedule.Reservation {
	out := make([]schedule.Reservation, 0, len(resvs))
	for _, r := range resvs {
		status := schedule.Status(r.Status)
		if !status.Blocks() {
			continue
		}
		out = append(out, schedule.Reservation{
			StartsAt:  r.StartsAt.In(loc),
			ExpiresAt: r.ExpiresAt.In(loc),
			Status:    status,
		})
	}
	return out
}
