package upstream

import (
	"context"
	"net/http"
)

// Login authenticates against the platform and returns its bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	var data loginData
	if err := c.do(ctx, http.MethodPost, "/client-auth/login", "", req, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var data loginData
	if err := c.do(ctx, http.MethodPost, "/client-auth/register", "", req, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

// MyProfile resolves the caller's account and vehicle count from the token.
func (c *Client) MyProfile(ctx context.Context, token string) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/client/me/vehicles/info", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
