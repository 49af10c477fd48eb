package queries

import (
	"context"

	"chargeway/internal/upstream"
)

type ComplaintListGateway interface {
	ClientComplaints(ctx context.Context, token string, clientID int64) ([]upstream.Complaint, error)
}

type ComplaintQueries interface {
	ListMine(ctx context.Context, token string, clientID int64) ([]ComplaintView, error)
}

type complaintQueriesImpl struct {
	gateway ComplaintListGateway
}

func NewComplaintQueries(gateway ComplaintListGateway) ComplaintQueries {
	return &complaintQueriesImpl{gateway: gateway}
}

func (q *complaintQueriesImpl) ListMine(ctx context.Context, token string, clientID int64) ([]ComplaintView, error) {
	complaints, err := q.gateway.ClientComplaints(ctx, token, clientID)
	if err != nil {
		return nil, err
	}

	views := make([]ComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, ComplaintView{
			ID:          c.ID,
			Description: c.Description,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt,
		})
	}
	return views, nil
}
