package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Barrel representa un barril de inventario líquido.
// Misma invariante de límites que Article: Liters dentro de [0, CapacityLiters].
type Barrel struct {
	ID             string
	Name           string
	Contents       string // qué contiene (p. ej. "desengrasante concentrado")
	Liters         decimal.Decimal
	CapacityLiters decimal.Decimal
	PricePerLiter  decimal.Decimal
	Supplier       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
