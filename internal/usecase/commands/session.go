package commands

import (
	"context"

	"chargeway/internal/domain/session"
	reqdto "chargeway/internal/handler/dto/request"
	"chargeway/internal/infra"
	"chargeway/internal/pkg/clock"
	"chargeway/internal/pkg/errs"
	"chargeway/internal/upstream"
)

var (
	ErrSessionNotFound     = errs.New("session not found")
	ErrSessionNotStarted   = errs.New("reservation has no started session")
	ErrSessionNotStartable = errs.New("reservation cannot start a session")
)

type SessionResult struct {
	SessionID     int64    `json:"session_id"`
	ReservationID int64    `json:"reservation_id"`
	EnergyKWh     *float64 `json:"energy_kwh,omitempty"`
	TotalPrice    *float64 `json:"total_price,omitempty"`
}

type SessionControlGateway interface {
	StartSession(ctx context.Context, token string, reservationID int64) (*upstream.Session, error)
	EndSession(ctx context.Context, token string, sessionID int64, energyKWh float64) (*upstream.Session, error)
	ActiveReservation(ctx context.Context, token string) (*upstream.Reservation, error)
}

type SessionCommands interface {
	Start(ctx context.Context, token string, req reqdto.StartSessionRequest) (*SessionResult, error)
	End(ctx context.Context, token string, req reqdto.EndSessionRequest) (*SessionResult, error)
}

type sessionCommandsImpl struct {
	gateway SessionControlGateway
	clk     clock.Clock
}

func NewSessionCommands(gateway SessionControlGateway, clk clock.Clock) SessionCommands {
	return &sessionCommandsImpl{gateway: gateway, clk: clk}
}

func (s *sessionCommandsImpl) Start(ctx context.Context, token string, req reqdto.StartSessionRequest) (*SessionResult, error) {
	sess, err := s.gateway.StartSession(ctx, token, req.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindBadRequest) {
			return nil, errs.Mark(err, ErrSessionNotStartable)
		}
		return nil, err
	}

	return &SessionResult{
		SessionID:     sess.ID,
		ReservationID: sess.ReservationID,
	}, nil
}

// End closes the running session, reporting the energy estimate computed from
// the reservation span and the connector's power rating. The upstream meters
// the billable value itself; the estimate only feeds the receipt screen.
func (s *sessionCommandsImpl) End(ctx context.Context, token string, req reqdto.EndSessionRequest) (*SessionResult, error) {
	energy, err := s.estimateEnergy(ctx, token, req.PowerKW)
	if err != nil {
		return nil, err
	}

	sess, err := s.gateway.EndSession(ctx, token, req.SessionID, energy)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSessionNotFound)
		}
		return nil, err
	}

	return &SessionResult{
		SessionID:     sess.ID,
		ReservationID: sess.ReservationID,
		EnergyKWh:     sess.EnergyKWh,
		TotalPrice:    sess.TotalPrice,
	}, nil
}

func (s *sessionCommandsImpl) estimateEnergy(ctx context.Context, token string, powerKW float64) (float64, error) {
	resv, err := s.gateway.ActiveReservation(ctx, token)
	if err != nil {
		return 0, err
	}
	if resv == nil {
		return 0, ErrSessionNotStarted
	}

	progress, err := session.Compute(resv.StartsAt, resv.ExpiresAt, s.clk.Now(), session.DefaultInitialPercent)
	if err != nil {
		return 0, err
	}
	if powerKW <= 0 {
		powerKW = session.DefaultPowerKW
	}
	return progress.EnergyKWh(powerKW), nil
}
