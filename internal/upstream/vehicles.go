package upstream

import (
	"context"
	"fmt"
	"net/http"
)

type addVehicleRequest struct {
	ClientID  int64 `json:"ClientId"`
	VariantID int64 `json:"VariantId"`
}

func (c *Client) AddVehicle(ctx context.Context, token string, clientID, variantID int64) (*Vehicle, error) {
	var vehicle Vehicle
	req := addVehicleRequest{ClientID: clientID, VariantID: variantID}
	if err := c.do(ctx, http.MethodPost, "/client/vehicles", token, req, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) RemoveVehicle(ctx context.Context, token string, vehicleID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/client/vehicles/%d", vehicleID), token, nil, nil)
}

func (c *Client) ClientVehicles(ctx context.Context, token string, clientID int64) ([]Vehicle, error) {
	var vehicles []Vehicle
	path := fmt.Sprintf("/client/vehicles/client/%d", clientID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (c *Client) Brands(ctx context.Context, token string) ([]Brand, error) {
	var brands []Brand
	if err := c.do(ctx, http.MethodGet, "/client/brands", token, nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *Client) Models(ctx context.Context, token string) ([]Model, error) {
	var models []Model
	if err := c.do(ctx, http.MethodGet, "/client/models", token, nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

func (c *Client) Variants(ctx context.Context, token string) ([]Variant, error) {
	var variants []Variant
	if err := c.do(ctx, http.MethodGet, "/client/variants", token, nil, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}
