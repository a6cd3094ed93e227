package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// BarrelHistoryRepository define el puerto de persistencia para la historia
// de barriles (append-only).
type BarrelHistoryRepository interface {
	Create(ctx context.Context, h *entity.BarrelHistory) error
	ListByBarrel(ctx context.Context, barrelID string, limit, offset int) ([]*entity.BarrelHistory, error)
}
