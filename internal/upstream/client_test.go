//go:build unit

package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chargeway/internal/infra"
	"chargeway/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, 5*time.Second, nil)
}

func envelope(data any) map[string]any {
	return map[string]any{
		"status":  200,
		"success": true,
		"message": "",
		"data":    data,
	}
}

func TestLogin(t *testing.T) {
	t.Run("unwraps the token from the envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/client-auth/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			var req upstream.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "driver", req.Username)

			_ = json.NewEncoder(w).Encode(envelope(map[string]string{"token": "platform-token"}))
		})

		token, err := client.Login(context.Background(), upstream.LoginRequest{Username: "driver", Password: "secret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "platform-token", token)
	})

	t.Run("401 maps to the unauthorized kind", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "bad credentials"})
		})

		_, err := client.Login(context.Background(), upstream.LoginRequest{Username: "driver", Password: "wrong-pass"})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnauthorized))
	})
}

func TestStations(t *testing.T) {
	t.Run("forwards the bearer token and decodes the list", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/client/stations", r.URL.Path)
			assert.Equal(t, "Bearer platform-token", r.Header.Get("Authorization"))

			_ = json.NewEncoder(w).Encode(envelope([]map[string]any{
				{"id": 1, "name": "Downtown", "coordinates": "36.8, 10.18"},
				{"id": 2, "name": "Airport", "coordinates": "36.85, 10.22"},
			}))
		})

		stations, err := client.Stations(context.Background(), "platform-token")
		require.NoError(t, err)
		require.Len(t, stations, 2)
		assert.Equal(t, int64(1), stations[0].ID)
		assert.Equal(t, "Downtown", stations[0].Name)
	})

	t.Run("decodes a top-level body without envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/client/stations/7", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "Bare"})
		})

		station, err := client.Station(context.Background(), "platform-token", 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), station.ID)
		assert.Equal(t, "Bare", station.Name)
	})

	t.Run("404 maps to the not-found kind", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.Station(context.Background(), "platform-token", 99)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCreateReservation(t *testing.T) {
	startsAt := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)
	expiresAt := startsAt.Add(time.Hour)

	t.Run("posts the span with client and connector ids", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/client/reservations", r.URL.Path)
			assert.Equal(t, "42", r.URL.Query().Get("clientId"))
			assert.Equal(t, "7", r.URL.Query().Get("connectorId"))

			var req upstream.CreateReservationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.True(t, req.StartsAt.Equal(startsAt))
			assert.True(t, req.ExpiresAt.Equal(expiresAt))

			_ = json.NewEncoder(w).Encode(envelope(map[string]any{
				"id":        101,
				"startsAt":  startsAt.Format(time.RFC3339),
				"expiresAt": expiresAt.Format(time.RFC3339),
				"status":    "UPCOMING",
			}))
		})

		resv, err := client.CreateReservation(context.Background(), "platform-token", 42, 7, upstream.CreateReservationRequest{
			StartsAt:  startsAt,
			ExpiresAt: expiresAt,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(101), resv.ID)
		assert.Equal(t, "UPCOMING", resv.Status)
	})

	t.Run("409 maps to the conflict kind", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "slot taken"})
		})

		_, err := client.CreateReservation(context.Background(), "platform-token", 42, 7, upstream.CreateReservationRequest{
			StartsAt:  startsAt,
			ExpiresAt: expiresAt,
		})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestActiveReservation(t *testing.T) {
	t.Run("returns nil when nothing is in progress", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "IN_PROGRESS", r.URL.Query().Get("status"))
			_ = json.NewEncoder(w).Encode(envelope([]any{}))
		})

		resv, err := client.ActiveReservation(context.Background(), "platform-token")
		require.NoError(t, err)
		assert.Nil(t, resv)
	})

	t.Run("returns the first in-progress reservation", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(envelope([]map[string]any{
				{"id": 5, "status": "IN_PROGRESS"},
				{"id": 6, "status": "IN_PROGRESS"},
			}))
		})

		resv, err := client.ActiveReservation(context.Background(), "platform-token")
		require.NoError(t, err)
		require.NotNil(t, resv)
		assert.Equal(t, int64(5), resv.ID)
	})
}

func TestEndSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/client/sessions/end/12", r.URL.Path)
		assert.Equal(t, "16.5", r.URL.Query().Get("energyKWh"))

		_ = json.NewEncoder(w).Encode(envelope(map[string]any{
			"id":            12,
			"reservationId": 5,
			"energyKWh":     16.5,
		}))
	})

	sess, err := client.EndSession(context.Background(), "platform-token", 12, 16.5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), sess.ID)
	require.NotNil(t, sess.EnergyKWh)
	assert.Equal(t, 16.5, *sess.EnergyKWh)
}
