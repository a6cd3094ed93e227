package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ArticleRepository define el puerto de persistencia para artículos.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error

	// UpdateQuantity persiste la nueva cantidad (primera escritura del
	// protocolo de mutación). unitPrice != nil actualiza además el último
	// precio de entrada.
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal, unitPrice *decimal.Decimal) error
}
