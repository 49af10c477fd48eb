package session

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSpan = errors.New("session end must be after start")

// DefaultInitialPercent is assumed when the vehicle's state of charge at
// plug-in is unknown; the display interpolates from here to full.
const DefaultInitialPercent = 20

// DefaultPowerKW is used for the energy estimate when the connector's power
// rating is not known to the caller.
const DefaultPowerKW = 22

// Progress is the cosmetic view of a running charging session, recomputed
// every tick from the two server-provided timestamps. It approximates nothing
// the upstream bills on.
type Progress struct {
	Elapsed        time.Duration
	Remaining      time.Duration
	BatteryPercent int
	Done           bool
}

// Compute linearly interpolates battery percentage from initialPercent at
// startsAt to 100 at expiresAt, clamping outside the span. Calling it twice
// with the same arguments yields the same Progress.
func Compute(startsAt, expiresAt, now time.Time, initialPercent int) (Progress, error) {
	total := expiresAt.Sub(startsAt)
	if total <= 0 {
		return Progress{}, ErrInvalidSpan
	}
	if initialPercent < 0 {
		initialPercent = 0
	}
	if initialPercent > 100 {
		initialPercent = 100
	}

	elapsed := now.Sub(startsAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}

	span := 100 - initialPercent
	percent := initialPercent + int(float64(span)*elapsed.Seconds()/total.Seconds())
	if percent > 100 {
		percent = 100
	}

	return Progress{
		Elapsed:        elapsed,
		Remaining:      total - elapsed,
		BatteryPercent: percent,
		Done:           percent >= 100 || elapsed >= total,
	}, nil
}

// EnergyKWh estimates the energy delivered so far from the connector power
// rating and elapsed time. Purely informative; the upstream meters the real
// value at session end.
func (p Progress) EnergyKWh(powerKW float64) float64 {
	return powerKW * p.Elapsed.Hours()
}

// FormatClock renders a duration as HH:MM:SS for display.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
