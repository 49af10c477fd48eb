//go:build unit

package session_test

import (
	"testing"
	"time"

	"chargeway/internal/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	start := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	t.Run("midpoint interpolates halfway to full", func(t *testing.T) {
		p, err := session.Compute(start, end, start.Add(time.Hour), 20)
		require.NoError(t, err)

		assert.Equal(t, 60, p.BatteryPercent) // 20 + 80/2
		assert.Equal(t, time.Hour, p.Elapsed)
		assert.Equal(t, time.Hour, p.Remaining)
		assert.False(t, p.Done)
	})

	t.Run("before start clamps to the initial level", func(t *testing.T) {
		p, err := session.Compute(start, end, start.Add(-time.Minute), 35)
		require.NoError(t, err)

		assert.Equal(t, 35, p.BatteryPercent)
		assert.Zero(t, p.Elapsed)
		assert.Equal(t, 2*time.Hour, p.Remaining)
	})

	t.Run("past the end clamps to full and done", func(t *testing.T) {
		p, err := session.Compute(start, end, end.Add(time.Hour), 20)
		require.NoError(t, err)

		assert.Equal(t, 100, p.BatteryPercent)
		assert.Zero(t, p.Remaining)
		assert.True(t, p.Done)
	})

	t.Run("out-of-range initial percent is clamped", func(t *testing.T) {
		p, err := session.Compute(start, end, start, -10)
		require.NoError(t, err)
		assert.Equal(t, 0, p.BatteryPercent)

		p, err = session.Compute(start, end, start, 150)
		require.NoError(t, err)
		assert.Equal(t, 100, p.BatteryPercent)
	})

	t.Run("same inputs yield the same progress", func(t *testing.T) {
		now := start.Add(45 * time.Minute)
		a, err := session.Compute(start, end, now, 20)
		require.NoError(t, err)
		b, err := session.Compute(start, end, now, 20)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("inverted span is rejected", func(t *testing.T) {
		_, err := session.Compute(end, start, start, 20)
		assert.ErrorIs(t, err, session.ErrInvalidSpan)

		_, err = session.Compute(start, start, start, 20)
		assert.ErrorIs(t, err, session.ErrInvalidSpan)
	})
}

func TestEnergyKWh(t *testing.T) {
	start := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	p, err := session.Compute(start, end, start.Add(90*time.Minute), 20)
	require.NoError(t, err)

	assert.InDelta(t, 33.0, p.EnergyKWh(22), 0.001) // 22 kW * 1.5 h
	assert.Zero(t, session.Progress{}.EnergyKWh(22))
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{65 * time.Second, "00:01:05"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04"},
		{-time.Minute, "00:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, session.FormatClock(tt.d))
	}
}
