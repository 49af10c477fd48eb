package request

type StartSessionRequest struct {
	ReservationID int64 `json:"reservation_id" binding:"required"`
}

type EndSessionRequest struct {
	SessionID int64   `json:"session_id" binding:"required"`
	PowerKW   float64 `json:"power_kw" binding:"omitempty,gt=0"`
}
