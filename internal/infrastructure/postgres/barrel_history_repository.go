package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.BarrelHistoryRepository = (*BarrelHistoryRepo)(nil)

// BarrelHistoryRepo implementación de BarrelHistoryRepository sobre PostgreSQL.
type BarrelHistoryRepo struct {
	q Querier
}

// NewBarrelHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBarrelHistoryRepository(q Querier) *BarrelHistoryRepo {
	return &BarrelHistoryRepo{q: q}
}

const barrelHistoryColumns = `id, barrel_id, actor_label, change_type, old_liters, new_liters, price_per_liter, dilution_ratio, note, created_at`

func scanBarrelHistory(row pgx.Row) (*entity.BarrelHistory, error) {
	var h entity.BarrelHistory
	err := row.Scan(
		&h.ID, &h.BarrelID, &h.ActorLabel, &h.ChangeType, &h.OldLiters,
		&h.NewLiters, &h.PricePerLiter, &h.DilutionRatio, &h.Note, &h.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create añade una fila de historia (append-only).
func (r *BarrelHistoryRepo) Create(ctx context.Context, h *entity.BarrelHistory) error {
	query := `
		INSERT INTO barrel_history (` + barrelHistoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.BarrelID, h.ActorLabel, h.ChangeType, h.OldLiters,
		h.NewLiters, h.PricePerLiter, h.DilutionRatio, h.Note, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert barrel history: %w", err)
	}
	return nil
}

// ListByBarrel lista la historia de un barril, más reciente primero.
func (r *BarrelHistoryRepo) ListByBarrel(ctx context.Context, barrelID string, limit, offset int) ([]*entity.BarrelHistory, error) {
	query := `
		SELECT ` + barrelHistoryColumns + `
		FROM barrel_history
		WHERE barrel_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, barrelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list barrel history: %w", err)
	}
	defer rows.Close()

	var out []*entity.BarrelHistory
	for rows.Next() {
		h, err := scanBarrelHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan barrel history: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
