package queries

import (
	"context"
	"strconv"
	"strings"

	"chargeway/internal/domain/booking"
	"chargeway/internal/infra"
	"chargeway/internal/pkg/config"
	"chargeway/internal/pkg/errs"
	"chargeway/internal/pkg/patch"
	"chargeway/internal/upstream"
)

var ErrStationNotFound = errs.New("station not found")

type StationGateway interface {
	Stations(ctx context.Context, token string) ([]upstream.Station, error)
	Station(ctx context.Context, token string, id int64) (*upstream.Station, error)
}

// StationCache is the read-through cache in front of the gateway. Both lookup
// methods report a miss rather than fail.
type StationCache interface {
	GetAll(ctx context.Context) ([]upstream.Station, bool)
	SetAll(ctx context.Context, stations []upstream.Station)
	Get(ctx context.Context, id int64) (*upstream.Station, bool)
	Set(ctx context.Context, station *upstream.Station)
}

type StationQueries interface {
	List(ctx context.Context, token string) ([]StationListItem, error)
	Get(ctx context.Context, token string, id int64) (*StationView, error)
}

type stationQueriesImpl struct {
	gateway StationGateway
	cache   StationCache
	booking config.BookingConfig
}

func NewStationQueries(gateway StationGateway, cache StationCache, cfg config.Config) StationQueries {
	return &stationQueriesImpl{
		gateway: gateway,
		cache:   cache,
		booking: cfg.Booking,
	}
}

func (q *stationQueriesImpl) List(ctx context.Context, token string) ([]StationListItem, error) {
	stations, hit := q.cache.GetAll(ctx)
	if !hit {
		var err error
		stations, err = q.gateway.Stations(ctx, token)
		if err != nil {
			return nil, err
		}
		q.cache.SetAll(ctx, stations)
	}

	items := make([]StationListItem, 0, len(stations))
	for _, s := range stations {
		lat, lng := parseCoordinates(s.Coordinates)
		available := false
		connectors := 0
		for _, cp := range s.ChargePoints {
			if cp.Availability {
				available = true
			}
			connectors += len(cp.Connectors)
		}
		items = append(items, StationListItem{
			ID:             s.ID,
			Name:           s.Name,
			Latitude:       lat,
			Longitude:      lng,
			Available:      available,
			ConnectorCount: connectors,
		})
	}
	return items, nil
}

func (q *stationQueriesImpl) Get(ctx context.Context, token string, id int64) (*StationView, error) {
	station, hit := q.cache.Get(ctx, id)
	if !hit {
		var err error
		station, err = q.gateway.Station(ctx, token, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrStationNotFound
			}
			return nil, err
		}
		q.cache.Set(ctx, station)
	}

	return q.toView(station), nil
}

func (q *stationQueriesImpl) toView(s *upstream.Station) *StationView {
	lat, lng := parseCoordinates(s.Coordinates)
	open, close := operatingHours(s, q.booking)

	view := &StationView{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  lat,
		Longitude: lng,
		PriceAC:   s.Config.PriceAC,
		PriceDC:   s.Config.PriceDC,
		OpenHour:  open,
		CloseHour: close,
	}

	for _, cp := range s.ChargePoints {
		cpView := ChargePointView{
			ID:           cp.ID,
			Region:       cp.Region,
			Availability: cp.Availability,
		}
		for _, conn := range cp.Connectors {
			rate, err := booking.ResolveRate(conn.Price, booking.CurrentType(strings.ToUpper(conn.CurrentType)), s.Config.PriceAC, s.Config.PriceDC)
			if err != nil {
				rate = 0
			}
			cpView.Connectors = append(cpView.Connectors, ConnectorView{
				ID:          conn.ID,
				CurrentType: strings.ToUpper(conn.CurrentType),
				PowerKW:     conn.Power,
				Rate:        rate,
			})
		}
		view.ChargePoints = append(view.ChargePoints, cpView)
	}
	return view
}

// operatingHours prefers per-station hours from the upstream config and falls
// back to the configured default window.
func operatingHours(s *upstream.Station, cfg config.BookingConfig) (int, int) {
	open := patch.Coalesce(s.Config.OpenHour, cfg.DefaultOpenHour)
	close := patch.Coalesce(s.Config.CloseHour, cfg.DefaultCloseHour)
	return open, close
}

// parseCoordinates splits the platform's "lat, lng" string; malformed input
// yields the zero origin rather than an error, matching how the map screen
// treated it.
func parseCoordinates(raw string) (float64, float64) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return lat, lng
}
