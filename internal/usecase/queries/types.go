package queries

import (
	"time"

	"chargeway/internal/domain/schedule"
)

// Read models (DTO for read side)

type StationListItem struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Available      bool    `json:"available"`
	ConnectorCount int     `json:"connector_count"`
}

type StationView struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	PriceAC      float64           `json:"price_ac"`
	PriceDC      float64           `json:"price_dc"`
	OpenHour     int               `json:"open_hour"`
	CloseHour    int               `json:"close_hour"`
	ChargePoints []ChargePointView `json:"charge_points"`
}

type ChargePointView struct {
	ID           int64           `json:"id"`
	Region       string          `json:"region"`
	Availability bool            `json:"availability"`
	Connectors   []ConnectorView `json:"connectors"`
}

type ConnectorView struct {
	ID          int64   `json:"id"`
	CurrentType string  `json:"current_type"`
	PowerKW     float64 `json:"power_kw"`
	Rate        float64 `json:"rate"`
}

// AvailabilityView is one service day's bookable grid for a connector.
type AvailabilityView struct {
	Day       int             `json:"day"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	OpenHour  int             `json:"open_hour"`
	CloseHour int             `json:"close_hour"`
	Rate      float64         `json:"rate"`
	Slots     []schedule.Slot `json:"slots"`
}

type CalendarView struct {
	Month int             `json:"month"`
	Year  int             `json:"year"`
	Week  int             `json:"week"`
	Weeks []schedule.Week `json:"weeks"`
}

type ReservationView struct {
	ID             int64     `json:"id"`
	StartsAt       time.Time `json:"starts_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	EstimatedPrice float64   `json:"estimated_price"`
	Status         string    `json:"status"`
	SessionID      *int64    `json:"session_id,omitempty"`
}

// ActiveSessionView is the polled charging screen: two upstream timestamps
// plus display values interpolated from them.
type ActiveSessionView struct {
	ReservationID  int64     `json:"reservation_id"`
	SessionID      *int64    `json:"session_id,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	Status         string    `json:"status"`
	EstimatedPrice float64   `json:"estimated_price"`
	BatteryPercent int       `json:"battery_percent"`
	TimeElapsed    string    `json:"time_elapsed"`
	TimeRemaining  string    `json:"time_remaining"`
	EnergyKWh      float64   `json:"energy_kwh"`
	Done           bool      `json:"done"`
}

type VehicleView struct {
	ID              int64   `json:"id"`
	VariantID       int64   `json:"variant_id,omitempty"`
	VariantName     string  `json:"variant_name,omitempty"`
	BatteryCapacity float64 `json:"battery_capacity,omitempty"`
}

type BrandView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ModelView struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"brand_id"`
	Name    string `json:"name"`
}

type VariantView struct {
	ID              int64   `json:"id"`
	ModelID         int64   `json:"model_id"`
	Name            string  `json:"name"`
	BatteryCapacity float64 `json:"battery_capacity"`
}

type ComplaintView struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProfileView struct {
	ClientID     int64  `json:"client_id"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Region       string `json:"region"`
	VehicleCount int    `json:"vehicle_count"`
}
