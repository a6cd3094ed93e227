package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockLogFilter filtros para el listado de auditoría.
type StockLogFilter struct {
	ArticleID  string
	ActorLabel string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// StockLogRepository define el puerto de persistencia para el log de stock.
// Las filas son append-only salvo el camino de corrección admin
// (UpdateReason / Delete), que nunca recalcula cantidades.
type StockLogRepository interface {
	Create(ctx context.Context, log *entity.StockLog) error
	GetByID(ctx context.Context, id string) (*entity.StockLog, error)
	List(ctx context.Context, filter StockLogFilter) ([]*entity.StockLog, error)
	Count(ctx context.Context, filter StockLogFilter) (int, error)
	UpdateReason(ctx context.Context, id, reason string) error
	Delete(ctx context.Context, id string) error
}
