package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// BarrelRepository define el puerto de persistencia para barriles.
type BarrelRepository interface {
	Create(ctx context.Context, barrel *entity.Barrel) error
	GetByID(ctx context.Context, id string) (*entity.Barrel, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Barrel, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Barrel, error)
	Update(ctx context.Context, barrel *entity.Barrel) error
	Delete(ctx context.Context, id string) error
}
