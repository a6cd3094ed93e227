package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBarrelRequest body para POST /api/barrels.
type CreateBarrelRequest struct {
	Name           string          `json:"name"`
	Contents       string          `json:"contents"`
	Liters         decimal.Decimal `json:"liters"`
	CapacityLiters decimal.Decimal `json:"capacity_liters"`
	PricePerLiter  decimal.Decimal `json:"price_per_liter"`
	Supplier       string          `json:"supplier"`
}

// BarrelChangeRequest body para fill/drain/dilute.
type BarrelChangeRequest struct {
	Liters        decimal.Decimal  `json:"liters"`
	PricePerLiter *decimal.Decimal `json:"price_per_liter,omitempty"` // solo recargas
	Note          string           `json:"note,omitempty"`
}

// BarrelResponse barril para el frontend.
type BarrelResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Contents       string          `json:"contents"`
	Liters         decimal.Decimal `json:"liters"`
	CapacityLiters decimal.Decimal `json:"capacity_liters"`
	PricePerLiter  decimal.Decimal `json:"price_per_liter"`
	Supplier       string          `json:"supplier"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BarrelHistoryResponse una fila de historia de barril.
type BarrelHistoryResponse struct {
	ID            string           `json:"id"`
	BarrelID      string           `json:"barrel_id"`
	ActorLabel    string           `json:"actor_label"`
	ChangeType    string           `json:"change_type"`
	OldLiters     decimal.Decimal  `json:"old_liters"`
	NewLiters     decimal.Decimal  `json:"new_liters"`
	PricePerLiter *decimal.Decimal `json:"price_per_liter,omitempty"`
	DilutionRatio *decimal.Decimal `json:"dilution_ratio,omitempty"`
	Note          string           `json:"note,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}
