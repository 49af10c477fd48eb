package schedule

import (
	"errors"
	"fmt"
	"time"
)

// SlotMinutes is the fixed length of a bookable slot.
const SlotMinutes = 30

var ErrInvalidWindow = errors.New("operating window must satisfy 0 <= open < close <= 24")

// Window is a station's daily operating hours as a half-open [Open, Close)
// hour pair.
type Window struct {
	OpenHour  int
	CloseHour int
}

// DefaultWindow applies when the upstream station config carries no hours.
var DefaultWindow = Window{OpenHour: 8, CloseHour: 24}

func NewWindow(open, close int) (Window, error) {
	if open < 0 || close > 24 || open >= close {
		return Window{}, ErrInvalidWindow
	}
	return Window{OpenHour: open, CloseHour: close}, nil
}

// Status is the upstream reservation lifecycle state.
type Status string

const (
	StatusUpcoming   Status = "UPCOMING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCanceled   Status = "CANCELED"
	StatusExpired    Status = "EXPIRED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusInProgress, StatusCompleted, StatusCanceled, StatusExpired:
		return true
	default:
		return false
	}
}

// Blocks reports whether a reservation in this state occupies its interval.
// Canceled and expired reservations release their slots.
func (s Status) Blocks() bool {
	return s != StatusCanceled && s != StatusExpired
}

// Terminal reports whether the lifecycle can no longer advance.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled || s == StatusExpired
}

// Reservation is the read-only projection of an upstream reservation that the
// slot engine overlaps against.
type Reservation struct {
	StartsAt  time.Time
	ExpiresAt time.Time
	Status    Status
}

// Slot is one 30-minute bookable interval of a service day. Slots are derived
// values: they are rebuilt from (day, window, reservations, now) on every
// request and identical inputs always produce identical output.
type Slot struct {
	Start         string // HH:MM
	End           string // HH:MM
	DurationMin   int
	ChargePercent int
	Rate          float64
	Available     bool
	PastTime      bool
	Reserved      bool
}

// BuildSlots produces the bookable grid for day within the operating window.
//
// A slot is PastTime only when day is today and the slot starts at or before
// now. A slot is Reserved when its half-open interval overlaps any blocking
// reservation; a reservation ending exactly at a slot's start does not block
// it. Available is the conjunction of neither.
func BuildSlots(day time.Time, window Window, rate float64, chargePercent int, reservations []Reservation, now time.Time) ([]Slot, error) {
	if _, err := NewWindow(window.OpenHour, window.CloseHour); err != nil {
		return nil, err
	}

	sameDay := day.Year() == now.Year() && day.YearDay() == now.YearDay()

	slots := make([]Slot, 0, (window.CloseHour-window.OpenHour)*60/SlotMinutes)
	for hour := window.OpenHour; hour < window.CloseHour; hour++ {
		for minute := 0; minute < 60; minute += SlotMinutes {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
			end := start.Add(SlotMinutes * time.Minute)

			past := sameDay && !start.After(now)
			reserved := overlapsAny(start, end, reservations)

			slots = append(slots, Slot{
				Start:         clockLabel(start),
				End:           clockLabel(end),
				DurationMin:   SlotMinutes,
				ChargePercent: chargePercent,
				Rate:          rate,
				Available:     !past && !reserved,
				PastTime:      past,
				Reserved:      reserved,
			})
		}
	}
	return slots, nil
}

func overlapsAny(start, end time.Time, reservations []Reservation) bool {
	for _, r := range reservations {
		if !r.Status.Blocks() {
			continue
		}
		if !sameCalendarDay(start, r.StartsAt) {
			continue
		}
		if overlaps(start, end, r.StartsAt, r.ExpiresAt) {
			return true
		}
	}
	return false
}

// overlaps tests half-open intervals for partial or full containment in
// either direction.
func overlaps(slotStart, slotEnd, resStart, resEnd time.Time) bool {
	if !slotStart.Before(resStart) && slotStart.Before(resEnd) {
		return true
	}
	if slotEnd.After(resStart) && !slotEnd.After(resEnd) {
		return true
	}
	return !slotStart.After(resStart) && !slotEnd.Before(resEnd)
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func clockLabel(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
