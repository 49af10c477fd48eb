package queries

import (
	"context"

	"chargeway/internal/upstream"
)

type ReservationListGateway interface {
	MyReservations(ctx context.Context, token, status string) ([]upstream.Reservation, error)
}

type ReservationQueries interface {
	ListMine(ctx context.Context, token, status string) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	gateway ReservationListGateway
}

func NewReservationQueries(gateway ReservationListGateway) ReservationQueries {
	return &reservationQueriesImpl{gateway: gateway}
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, token, status string) ([]ReservationView, error) {
	resvs, err := q.gateway.MyReservations(ctx, token, status)
	if err != nil {
		return nil, err
	}

	views := make([]ReservationView, 0, len(resvs))
	for _, r := range resvs {
		views = append(views, ReservationView{
			ID:             r.ID,
			StartsAt:       r.StartsAt,
			ExpiresAt:      r.ExpiresAt,
			EstimatedPrice: r.EstimatedPrice,
			Status:         r.Status,
			SessionID:      r.SessionID,
		})
	}
	return views, nil
}
