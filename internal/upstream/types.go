package upstream

import (
	"encoding/json"
	"time"
)

// Wire types mirror the charging platform's JSON. IDs are the platform's
// numeric identifiers; this service never mints its own.

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Station struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Coordinates  string        `json:"coordinates"` // "lat, lng"
	ChargePoints []ChargePoint `json:"chargePoints"`
	Config       StationConfig `json:"stationConfig"`
}

type StationConfig struct {
	ID        int64   `json:"id"`
	PriceAC   float64 `json:"priceAC"`
	PriceDC   float64 `json:"priceDC"`
	OpenHour  *int    `json:"openHour,omitempty"`
	CloseHour *int    `json:"closeHour,omitempty"`
}

type ChargePoint struct {
	ID           int64       `json:"id"`
	Region       string      `json:"region"`
	Availability bool        `json:"availability"`
	Connectors   []Connector `json:"connectors"`
}

type Connector struct {
	ID          int64    `json:"id"`
	CurrentType string   `json:"currentType"` // "AC" | "DC"
	Power       float64  `json:"power"`       // kW
	Price       *float64 `json:"price,omitempty"`
}

type Reservation struct {
	ID             int64              `json:"id"`
	StartsAt       time.Time          `json:"startsAt"`
	ExpiresAt      time.Time          `json:"expiresAt"`
	EstimatedPrice float64            `json:"estimatedPrice"`
	Status         string             `json:"status"`
	Config         *ReservationConfig `json:"reservationConfig,omitempty"`
	SessionID      *int64             `json:"sessionId,omitempty"`
}

type ReservationConfig struct {
	ID                 int64  `json:"id"`
	Tolerance          int    `json:"tolerance"`
	MaxReservation     int    `json:"maxReservation"`
	MinNoticePeriod    int    `json:"minNoticePeriod"`
	CancellationPolicy string `json:"cancellationPolicy"`
}

type CreateReservationRequest struct {
	StartsAt  time.Time `json:"startsAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Session struct {
	ID            int64      `json:"id"`
	ReservationID int64      `json:"reservationId"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	EndedAt       *time.Time `json:"endedAt,omitempty"`
	EnergyKWh     *float64   `json:"energyKWh,omitempty"`
	TotalPrice    *float64   `json:"totalPrice,omitempty"`
}

type Profile struct {
	Client       ClientInfo `json:"client"`
	VehicleCount int        `json:"vehicleCount"`
}

type ClientInfo struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Region    string `json:"region"`
}

type Vehicle struct {
	ID      int64    `json:"id"`
	Variant *Variant `json:"variant,omitempty"`
}

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Model struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"brandId"`
	Name    string `json:"name"`
}

type Variant struct {
	ID              int64   `json:"id"`
	ModelID         int64   `json:"modelId"`
	Name            string  `json:"name"`
	BatteryCapacity float64 `json:"batteryCapacity"` // kWh
}

type Complaint struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Region    string `json:"region"`
}

type loginData struct {
	Token string `json:"token"`
}
