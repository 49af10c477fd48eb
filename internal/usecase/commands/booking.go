package commands

import (
	"context"
	"sync"

	"chargeway/internal/domain/booking"
	"chargeway/internal/domain/schedule"
	reqdto "chargeway/internal/handler/dto/request"
	"chargeway/internal/infra"
	"chargeway/internal/pkg/config"
	"chargeway/internal/pkg/errs"
	"chargeway/internal/upstream"
	"chargeway/internal/usecase/queries"
)

var (
	ErrEmptySelection         = errs.New("selection is empty")
	ErrSelectionNotContiguous = errs.New("selection is not contiguous")
	ErrSlotUnavailable        = errs.New("selected slot is not available")
	ErrSlotIndexOutOfRange    = errs.New("slot index out of range")
	ErrBookingInFlight        = errs.New("a booking for this client is already in flight")
	ErrBookingConflict        = errs.New("slot was taken by another reservation")
	ErrReservationNotFound    = errs.New("reservation not found")
)

type SelectionResult struct {
	Selection   []int   `json:"selection"`
	DurationMin int     `json:"duration_min"`
	TotalPrice  float64 `json:"total_price"`
}

type BookingGateway interface {
	CreateReservation(ctx context.Context, token string, clientID, connectorID int64, req upstream.CreateReservationRequest) (*upstream.Reservation, error)
	CancelReservation(ctx context.Context, token string, reservationID int64) error
}

type BookingCommands interface {
	ToggleSelection(ctx context.Context, token string, clientID int64, req reqdto.ToggleSelectionRequest) (*SelectionResult, error)
	CreateBooking(ctx context.Context, token string, clientID int64, req reqdto.CreateBookingRequest) (*queries.ReservationView, error)
	CancelBooking(ctx context.Context, token string, reservationID int64) error
}

type bookingCommandsImpl struct {
	availability queries.AvailabilityQueries
	gateway      BookingGateway
	booking      config.BookingConfig

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

func NewBookingCommands(availability queries.AvailabilityQueries, gateway BookingGateway, cfg config.Config) BookingCommands {
	return &bookingCommandsImpl{
		availability: availability,
		gateway:      gateway,
		booking:      cfg.Booking,
		inFlight:     make(map[int64]struct{}),
	}
}

// ToggleSelection applies one tap to the slot selection against a freshly
// computed grid. Taps on reserved or past slots leave the selection unchanged;
// taps adjacent to a contiguous run extend it, anything else restarts at the
// tapped slot.
func (b *bookingCommandsImpl) ToggleSelection(ctx context.Context, token string, clientID int64, req reqdto.ToggleSelectionRequest) (*SelectionResult, error) {
	grid, err := b.grid(ctx, token, clientID, req.Grid)
	if err != nil {
		return nil, err
	}

	sel := schedule.Selection(req.Selection).Toggle(req.Index, grid.Slots)

	return &SelectionResult{
		Selection:   []int(sel),
		DurationMin: sel.DurationMinutes(),
		TotalPrice:  sel.TotalPrice(grid.Rate),
	}, nil
}

// CreateBooking revalidates the selection against the live grid and submits
// the reservation span upstream. One booking per client may be in flight at a
// time; a second submit while the first is pending is rejected rather than
// queued.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, token string, clientID int64, req reqdto.CreateBookingRequest) (*queries.ReservationView, error) {
	if !b.acquire(clientID) {
		return nil, ErrBookingInFlight
	}
	defer b.release(clientID)

	grid, err := b.grid(ctx, token, clientID, req.Grid)
	if err != nil {
		return nil, err
	}

	sel := schedule.Selection(req.Selection)
	if err := validateSelection(sel, grid.Slots); err != nil {
		return nil, err
	}

	loc, err := b.booking.Location()
	if err != nil {
		return nil, err
	}

	payload, err := booking.BuildPayload(sel, grid.Slots, req.Grid.Day, req.Grid.Month, req.Grid.Year, loc)
	if err != nil {
		return nil, errs.Mark(err, ErrEmptySelection)
	}

	resv, err := b.gateway.CreateReservation(ctx, token, clientID, req.Grid.ConnectorID, upstream.CreateReservationRequest{
		StartsAt:  payload.StartsAt,
		ExpiresAt: payload.ExpiresAt,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrBookingConflict)
		}
		return nil, err
	}

	return &queries.ReservationView{
		ID:             resv.ID,
		StartsAt:       resv.StartsAt,
		ExpiresAt:      resv.ExpiresAt,
		EstimatedPrice: resv.EstimatedPrice,
		Status:         resv.Status,
		SessionID:      resv.SessionID,
	}, nil
}

func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, token string, reservationID int64) error {
	if err := b.gateway.CancelReservation(ctx, token, reservationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrReservationNotFound)
		}
		return err
	}
	return nil
}

func (b *bookingCommandsImpl) grid(ctx context.Context, token string, clientID int64, gc reqdto.GridContext) (*queries.AvailabilityView, error) {
	return b.availability.Grid(ctx, token, clientID, gc.StationID, gc.ConnectorID, gc.Day, gc.Month, gc.Year, gc.ChargePercent)
}

func (b *bookingCommandsImpl) acquire(clientID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.inFlight[clientID]; busy {
		return false
	}
	b.inFlight[clientID] = struct{}{}
	return true
}

func (b *bookingCommandsImpl) release(clientID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inFlight, clientID)
}

func validateSelection(sel schedule.Selection, slots []schedule.Slot) error {
	if len(sel) == 0 {
		return ErrEmptySelection
	}
	if !sel.IsContiguous() {
		return ErrSelectionNotContiguous
	}
	for _, idx := range sel {
		if idx < 0 || idx >= len(slots) {
			return ErrSlotIndexOutOfRange
		}
		if !slots[idx].Available {
			return ErrSlotUnavailable
		}
	}
	return nil
}
