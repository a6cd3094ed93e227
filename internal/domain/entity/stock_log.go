package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones registradas en el log de stock.
const (
	StockActionAdd    = "add"    // entrada
	StockActionRemove = "remove" // salida
)

// StockLog es el registro inmutable de auditoría de una mutación aceptada.
// Se crea exactamente una vez por mutación y solo el camino de corrección
// admin puede editarlo o borrarlo (sin recalcular la cantidad del artículo).
type StockLog struct {
	ID           string
	ArticleID    string
	ArticleName  string // denormalizado: el log debe leerse solo
	ActorLabel   string // "Nombre Apellido (email)" | email | "sistema"
	Action       string // add, remove
	OldQuantity  decimal.Decimal
	NewQuantity  decimal.Decimal
	Delta        decimal.Decimal  // con signo: +amount entrada, -amount salida
	UnitPrice    *decimal.Decimal // solo entradas
	TotalCost    *decimal.Decimal // amount * unitPrice, solo entradas
	Reason       string
	DeliveryNote string // referencia de remisión, solo tiene sentido en entradas
	CreatedAt    time.Time
}
