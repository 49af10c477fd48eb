package booking

import (
	"errors"
	"time"

	"chargeway/internal/domain/schedule"
)

var (
	ErrEmptySelection     = errors.New("selection is empty")
	ErrSelectionGap       = errors.New("selection is not contiguous")
	ErrSlotOutOfRange     = errors.New("selected slot index out of range")
	ErrNoRate             = errors.New("no price available for connector")
	ErrInvalidChargeLevel = errors.New("charge level must be between 0 and 100")
)

// CurrentType is a connector's current delivery type.
type CurrentType string

const (
	CurrentAC CurrentType = "AC"
	CurrentDC CurrentType = "DC"
)

// ResolveRate returns the flat per-slot price for a connector: the
// connector's own price when set, otherwise the station-level AC or DC rate
// matching the connector's current type. The rate is resolved once per
// booking context and echoed on every slot.
func ResolveRate(connectorPrice *float64, currentType CurrentType, stationPriceAC, stationPriceDC float64) (float64, error) {
	if connectorPrice != nil && *connectorPrice > 0 {
		return *connectorPrice, nil
	}
	switch currentType {
	case CurrentAC:
		return stationPriceAC, nil
	case CurrentDC:
		return stationPriceDC, nil
	default:
		return 0, ErrNoRate
	}
}

// ChargeLevel is the target battery percentage chosen in the booking flow. It
// is display state carried through the flow, not a per-slot computation.
type ChargeLevel int

func NewChargeLevel(percent int) (ChargeLevel, error) {
	if percent < 0 || percent > 100 {
		return 0, ErrInvalidChargeLevel
	}
	return ChargeLevel(percent), nil
}

func (c ChargeLevel) Percent() int { return int(c) }

// Payload is the reservation creation request: the only scheduling data that
// crosses to the upstream platform. The upstream re-checks conflicts at
// commit time; the client-side availability grid is advisory only.
type Payload struct {
	StartsAt  time.Time
	ExpiresAt time.Time
}

// BuildPayload combines the first selected slot's start and the last selected
// slot's end with the service date, in loc, and normalizes both to UTC.
func BuildPayload(sel schedule.Selection, slots []schedule.Slot, day, month, year int, loc *time.Location) (Payload, error) {
	if len(sel) == 0 {
		return Payload{}, ErrEmptySelection
	}
	if !sel.IsContiguous() {
		return Payload{}, ErrSelectionGap
	}
	first, last := sel.Min(), sel.Max()
	if first < 0 || last >= len(slots) {
		return Payload{}, ErrSlotOutOfRange
	}

	start, err := atClock(slots[first].Start, day, month, year, loc)
	if err != nil {
		return Payload{}, err
	}
	end, err := atClock(slots[last].End, day, month, year, loc)
	if err != nil {
		return Payload{}, err
	}
	// A run ending on the window's closing midnight spills into the next day.
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return Payload{StartsAt: start.UTC(), ExpiresAt: end.UTC()}, nil
}

func atClock(hhmm string, day, month, year int, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, t.Hour(), t.Minute(), 0, 0, loc), nil
}
