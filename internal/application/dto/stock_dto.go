package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MutateStockRequest body para POST /api/articles/:id/stock.
type MutateStockRequest struct {
	Action       string           `json:"action"` // add, remove
	Amount       decimal.Decimal  `json:"amount"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"` // obligatorio en add
	Reason       string           `json:"reason,omitempty"`
	DeliveryNote string           `json:"delivery_note,omitempty"`
}

// StockLogResponse una fila del log de auditoría.
type StockLogResponse struct {
	ID           string           `json:"id"`
	ArticleID    string           `json:"article_id"`
	ArticleName  string           `json:"article_name"`
	ActorLabel   string           `json:"actor_label"`
	Action       string           `json:"action"`
	OldQuantity  decimal.Decimal  `json:"old_quantity"`
	NewQuantity  decimal.Decimal  `json:"new_quantity"`
	Delta        decimal.Decimal  `json:"delta"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	TotalCost    *decimal.Decimal `json:"total_cost,omitempty"`
	Reason       string           `json:"reason,omitempty"`
	DeliveryNote string           `json:"delivery_note,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// MutateStockResponse respuesta de una mutación aceptada.
type MutateStockResponse struct {
	Article ArticleResponse  `json:"article"`
	Log     StockLogResponse `json:"log"`
}
