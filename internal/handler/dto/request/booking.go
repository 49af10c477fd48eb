package request

// GridContext identifies one connector's slot grid for a service day. Both
// the toggle and booking endpoints recompute the grid from it so that client
// and server always agree on slot indices.
type GridContext struct {
	StationID     int64 `json:"station_id" binding:"required"`
	ConnectorID   int64 `json:"connector_id" binding:"required"`
	Day           int   `json:"day" binding:"required,min=1,max=31"`
	Month         int   `json:"month" binding:"required,min=1,max=12"`
	Year          int   `json:"year" binding:"required,min=2000"`
	ChargePercent int   `json:"charge_percent" binding:"omitempty,min=0,max=100"`
}

type ToggleSelectionRequest struct {
	Grid      GridContext `json:"grid" binding:"required"`
	Selection []int       `json:"selection"`
	Index     int         `json:"index" binding:"min=0"`
}

type CreateBookingRequest struct {
	Grid      GridContext `json:"grid" binding:"required"`
	Selection []int       `json:"selection" binding:"required,min=1"`
}
