package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateReservation submits a booking payload for the given client and
// connector. The platform is the authority on conflicts; a 409 here means the
// slot was taken between the availability check and the commit.
func (c *Client) CreateReservation(ctx context.Context, token string, clientID, connectorID int64, req CreateReservationRequest) (*Reservation, error) {
	path := fmt.Sprintf("/client/reservations?clientId=%d&connectorId=%d", clientID, connectorID)
	var reservation Reservation
	if err := c.do(ctx, http.MethodPost, path, token, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// MyReservations lists the caller's reservations filtered by lifecycle
// status (UPCOMING, IN_PROGRESS, COMPLETED, CANCELED, EXPIRED).
func (c *Client) MyReservations(ctx context.Context, token, status string) ([]Reservation, error) {
	path := "/client/reservations/me/reservations?status=" + url.QueryEscape(status)
	var reservations []Reservation
	if err := c.do(ctx, http.MethodGet, path, token, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ConnectorReservations lists reservations booked against a connector, the
// input to the availability grid.
func (c *Client) ConnectorReservations(ctx context.Context, token string, clientID, connectorID int64) ([]Reservation, error) {
	path := fmt.Sprintf("/client/reservations?clientId=%d&connectorId=%d", clientID, connectorID)
	var reservations []Reservation
	if err := c.do(ctx, http.MethodGet, path, token, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) CancelReservation(ctx context.Context, token string, reservationID int64) error {
	path := fmt.Sprintf("/client/reservations/%d/cancel", reservationID)
	return c.do(ctx, http.MethodPut, path, token, nil, nil)
}
