package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventorySummary calcula las métricas agregadas del inventario actual.
func (r *AnalyticsRepo) GetInventorySummary(ctx context.Context) (*repository.InventorySummary, error) {
	var s repository.InventorySummary

	query := `
		SELECT
			count(*),
			COALESCE(sum(quantity * unit_price), 0),
			count(*) FILTER (WHERE max_capacity > 0 AND quantity < max_capacity * 0.10)
		FROM articles`
	err := r.q.QueryRow(ctx, query).Scan(&s.ArticleCount, &s.TotalValue, &s.LowStockCount)
	if err != nil {
		return nil, fmt.Errorf("inventory summary (articles): %w", err)
	}

	err = r.q.QueryRow(ctx, `SELECT count(*), COALESCE(sum(liters), 0) FROM barrels`).
		Scan(&s.BarrelCount, &s.TotalLiters)
	if err != nil {
		return nil, fmt.Errorf("inventory summary (barrels): %w", err)
	}
	return &s, nil
}

// GetMovementsPerDay agrega entradas y salidas del log por día dentro del
// rango [from, to]. Días sin movimientos no aparecen en el resultado.
func (r *AnalyticsRepo) GetMovementsPerDay(ctx context.Context, from, to time.Time) ([]repository.MovementsPerDay, error) {
	query := `
		SELECT
			date_trunc('day', created_at) AS day,
			COALESCE(sum(delta) FILTER (WHERE action = $3), 0) AS added,
			COALESCE(-sum(delta) FILTER (WHERE action = $4), 0) AS removed
		FROM stock_logs
		WHERE created_at >= $1 AND created_at <= $2
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(ctx, query, from, to, entity.StockActionAdd, entity.StockActionRemove)
	if err != nil {
		return nil, fmt.Errorf("movements per day: %w", err)
	}
	defer rows.Close()

	var out []repository.MovementsPerDay
	for rows.Next() {
		var m repository.MovementsPerDay
		if err := rows.Scan(&m.Day, &m.Added, &m.Removed); err != nil {
			return nil, fmt.Errorf("scan movements per day: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
