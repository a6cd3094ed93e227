package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateArticleRequest body para POST /api/articles.
type CreateArticleRequest struct {
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	MaxCapacity decimal.Decimal `json:"max_capacity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Supplier    string          `json:"supplier"`
}

// UpdateArticleRequest body para PUT /api/articles/:id. La cantidad NO se
// edita por aquí: solo vía el protocolo de mutación de stock.
type UpdateArticleRequest struct {
	Name        string          `json:"name"`
	MaxCapacity decimal.Decimal `json:"max_capacity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Supplier    string          `json:"supplier"`
}

// ArticleResponse artículo para el frontend.
type ArticleResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	MaxCapacity decimal.Decimal `json:"max_capacity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Supplier    string          `json:"supplier"`
	ImageKey    string          `json:"image_key,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
