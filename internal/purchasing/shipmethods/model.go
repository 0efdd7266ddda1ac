// Package shipmethods is plain single-row CRUD for shipping methods.
package shipmethods

import "time"

type ShipMethod struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ShipBase     float64   `json:"ship_base"`
	ShipRate     float64   `json:"ship_rate"`
	ModifiedDate time.Time `json:"modified_date"`
}

type CreateShipMethodRequest struct {
	Name     string  `json:"name" validate:"required,max=50"`
	ShipBase float64 `json:"ship_base" validate:"gte=0"`
	ShipRate float64 `json:"ship_rate" validate:"gte=0"`
}

type UpdateShipMethodRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,max=50"`
	ShipBase *float64 `json:"ship_base,omitempty" validate:"omitempty,gte=0"`
	ShipRate *float64 `json:"ship_rate,omitempty" validate:"omitempty,gte=0"`
}
