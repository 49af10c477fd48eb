package upstream

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) StartSession(ctx context.Context, token string, reservationID int64) (*Session, error) {
	path := fmt.Sprintf("/client/sessions/start?reservationId=%d", reservationID)
	var session Session
	if err := c.do(ctx, http.MethodPost, path, token, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// EndSession closes a running session, reporting the energy figure the
// client displayed. The platform meters the billable amount itself.
func (c *Client) EndSession(ctx context.Context, token string, sessionID int64, energyKWh float64) (*Session, error) {
	path := fmt.Sprintf("/client/sessions/end/%d?energyKWh=%g", sessionID, energyKWh)
	var session Session
	if err := c.do(ctx, http.MethodPut, path, token, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ActiveReservation returns the caller's in-progress reservation, or nil when
// nothing is charging.
func (c *Client) ActiveReservation(ctx context.Context, token string) (*Reservation, error) {
	reservations, err := c.MyReservations(ctx, token, "IN_PROGRESS")
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, nil
	}
	return &reservations[0], nil
}
