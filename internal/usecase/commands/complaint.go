package commands

import (
	"context"

	reqdto "chargeway/internal/handler/dto/request"
	"chargeway/internal/upstream"
	"chargeway/internal/usecase/queries"
)

type ComplaintGateway interface {
	CreateComplaint(ctx context.Context, token string, clientID int64, description string) (*upstream.Complaint, error)
}

type ComplaintCommands interface {
	Create(ctx context.Context, token string, clientID int64, req reqdto.CreateComplaintRequest) (*queries.ComplaintView, error)
}

type complaintCommandsImpl struct {
	gateway ComplaintGateway
}

func NewComplaintCommands(gateway ComplaintGateway) ComplaintCommands {
	return &complaintCommandsImpl{gateway: gateway}
}

func (c *complaintCommandsImpl) Create(ctx context.Context, token string, clientID int64, req reqdto.CreateComplaintRequest) (*queries.ComplaintView, error) {
	complaint, err := c.gateway.CreateComplaint(ctx, token, clientID, req.Description)
	if err != nil {
		return nil, err
	}

	return &queries.ComplaintView{
		ID:          complaint.ID,
		Description: complaint.Description,
		Status:      complaint.Status,
		CreatedAt:   complaint.CreatedAt,
	}, nil
}
