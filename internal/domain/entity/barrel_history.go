package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cambio registrados en la historia de un barril.
const (
	BarrelChangeFill   = "fill"   // recarga
	BarrelChangeDrain  = "drain"  // consumo
	BarrelChangeDilute = "dilute" // dilución con agua
)

// BarrelHistory es una fila de historia por cada cambio aceptado de nivel.
// DilutionRatio solo aplica a diluciones: litros de agua / litros previos.
type BarrelHistory struct {
	ID            string
	BarrelID      string
	ActorLabel    string
	ChangeType    string // fill, drain, dilute
	OldLiters     decimal.Decimal
	NewLiters     decimal.Decimal
	PricePerLiter *decimal.Decimal // solo recargas
	DilutionRatio *decimal.Decimal // solo diluciones
	Note          string
	CreatedAt     time.Time
}
