package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article representa un artículo del catálogo con su nivel de stock.
// Invariante: Quantity siempre dentro de [0, MaxCapacity]; toda mutación que
// lo violaría se rechaza antes de escribir.
type Article struct {
	ID          string
	Name        string
	Quantity    decimal.Decimal
	MaxCapacity decimal.Decimal
	UnitPrice   decimal.Decimal // último precio unitario de entrada
	Supplier    string
	ImageKey    string // clave en object storage, vacío si no tiene imagen
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
