package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.BarrelRepository = (*BarrelRepo)(nil)

// BarrelRepo implementación de BarrelRepository sobre PostgreSQL (usable con pool o tx).
type BarrelRepo struct {
	q Querier
}

// NewBarrelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBarrelRepository(q Querier) *BarrelRepo {
	return &BarrelRepo{q: q}
}

const barrelColumns = `id, name, contents, liters, capacity_liters, price_per_liter, supplier, created_at, updated_at`

func scanBarrel(row pgx.Row) (*entity.Barrel, error) {
	var b entity.Barrel
	err := row.Scan(
		&b.ID, &b.Name, &b.Contents, &b.Liters, &b.CapacityLiters,
		&b.PricePerLiter, &b.Supplier, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste un barril nuevo.
func (r *BarrelRepo) Create(ctx context.Context, barrel *entity.Barrel) error {
	query := `
		INSERT INTO barrels (` + barrelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		barrel.ID, barrel.Name, barrel.Contents, barrel.Liters, barrel.CapacityLiters,
		barrel.PricePerLiter, barrel.Supplier, barrel.CreatedAt, barrel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert barrel: %w", err)
	}
	return nil
}

// GetByID obtiene un barril por ID; nil si no existe.
func (r *BarrelRepo) GetByID(ctx context.Context, id string) (*entity.Barrel, error) {
	query := `SELECT ` + barrelColumns + ` FROM barrels WHERE id = $1`
	b, err := scanBarrel(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get barrel: %w", err)
	}
	return b, nil
}

// GetForUpdate obtiene el barril y bloquea la fila (SELECT FOR UPDATE).
func (r *BarrelRepo) GetForUpdate(ctx context.Context, id string) (*entity.Barrel, error) {
	query := `SELECT ` + barrelColumns + ` FROM barrels WHERE id = $1 FOR UPDATE`
	b, err := scanBarrel(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get barrel for update: %w", err)
	}
	return b, nil
}

// List lista barriles por nombre, paginados.
func (r *BarrelRepo) List(ctx context.Context, limit, offset int) ([]*entity.Barrel, error) {
	query := `SELECT ` + barrelColumns + ` FROM barrels ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list barrels: %w", err)
	}
	defer rows.Close()

	var out []*entity.Barrel
	for rows.Next() {
		b, err := scanBarrel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan barrel: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update actualiza un barril.
func (r *BarrelRepo) Update(ctx context.Context, barrel *entity.Barrel) error {
	query := `
		UPDATE barrels
		SET name = $2, contents = $3, liters = $4, capacity_liters = $5,
		    price_per_liter = $6, supplier = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		barrel.ID, barrel.Name, barrel.Contents, barrel.Liters, barrel.CapacityLiters,
		barrel.PricePerLiter, barrel.Supplier, barrel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update barrel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete elimina un barril (su historia se conserva).
func (r *BarrelRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM barrels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete barrel: %w", err)
	}
	return nil
}
