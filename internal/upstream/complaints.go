package upstream

import (
	"context"
	"fmt"
	"net/http"
)

type createComplaintRequest struct {
	Description string `json:"description"`
}

func (c *Client) CreateComplaint(ctx context.Context, token string, clientID int64, description string) (*Complaint, error) {
	var complaint Complaint
	path := fmt.Sprintf("/client/complaints/%d", clientID)
	req := createComplaintRequest{Description: description}
	if err := c.do(ctx, http.MethodPost, path, token, req, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (c *Client) ClientComplaints(ctx context.Context, token string, clientID int64) ([]Complaint, error) {
	var complaints []Complaint
	path := fmt.Sprintf("/client/complaints/%d", clientID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}
