package upstream

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Stations(ctx context.Context, token string) ([]Station, error) {
	var stations []Station
	if err := c.do(ctx, http.MethodGet, "/client/stations", token, nil, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

func (c *Client) Station(ctx context.Context, token string, id int64) (*Station, error) {
	var station Station
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/client/stations/%d", id), token, nil, &station); err != nil {
		return nil, err
	}
	return &station, nil
}
