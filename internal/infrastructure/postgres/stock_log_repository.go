package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implementación de StockLogRepository sobre PostgreSQL (usable con pool o tx).
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

const stockLogColumns = `id, article_id, article_name, actor_label, action, old_quantity, new_quantity, delta, unit_price, total_cost, reason, delivery_note, created_at`

func scanStockLog(row pgx.Row) (*entity.StockLog, error) {
	var l entity.StockLog
	err := row.Scan(
		&l.ID, &l.ArticleID, &l.ArticleName, &l.ActorLabel, &l.Action,
		&l.OldQuantity, &l.NewQuantity, &l.Delta, &l.UnitPrice, &l.TotalCost,
		&l.Reason, &l.DeliveryNote, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create añade una fila al log (append-only en el protocolo normal).
func (r *StockLogRepo) Create(ctx context.Context, log *entity.StockLog) error {
	query := `
		INSERT INTO stock_logs (` + stockLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.ArticleID, log.ArticleName, log.ActorLabel, log.Action,
		log.OldQuantity, log.NewQuantity, log.Delta, log.UnitPrice, log.TotalCost,
		log.Reason, log.DeliveryNote, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock log: %w", err)
	}
	return nil
}

// GetByID obtiene una fila por ID; nil si no existe.
func (r *StockLogRepo) GetByID(ctx context.Context, id string) (*entity.StockLog, error) {
	query := `SELECT ` + stockLogColumns + ` FROM stock_logs WHERE id = $1`
	l, err := scanStockLog(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock log: %w", err)
	}
	return l, nil
}

// buildLogFilter arma el WHERE dinámico compartido entre List y Count.
func buildLogFilter(filter repository.StockLogFilter) (string, []any) {
	where := " WHERE 1=1"
	args := []any{}
	n := 0
	next := func() string {
		n++
		return "$" + strconv.Itoa(n)
	}
	if filter.ArticleID != "" {
		where += " AND article_id = " + next()
		args = append(args, filter.ArticleID)
	}
	if filter.ActorLabel != "" {
		where += " AND actor_label = " + next()
		args = append(args, filter.ActorLabel)
	}
	if filter.From != nil {
		where += " AND created_at >= " + next()
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where += " AND created_at <= " + next()
		args = append(args, *filter.To)
	}
	return where, args
}

// List lista filas del log, más reciente primero.
func (r *StockLogRepo) List(ctx context.Context, filter repository.StockLogFilter) ([]*entity.StockLog, error) {
	where, args := buildLogFilter(filter)
	query := `SELECT ` + stockLogColumns + ` FROM stock_logs` + where +
		` ORDER BY created_at DESC LIMIT ` + strconv.Itoa(filter.Limit) +
		` OFFSET ` + strconv.Itoa(filter.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockLog
	for rows.Next() {
		l, err := scanStockLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock log: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Count cuenta las filas que cumplen el filtro.
func (r *StockLogRepo) Count(ctx context.Context, filter repository.StockLogFilter) (int, error) {
	where, args := buildLogFilter(filter)
	var total int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_logs`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count stock logs: %w", err)
	}
	return total, nil
}

// UpdateReason corrección admin: solo toca el comentario.
func (r *StockLogRepo) UpdateReason(ctx context.Context, id, reason string) error {
	tag, err := r.q.Exec(ctx, `UPDATE stock_logs SET reason = $2 WHERE id = $1`, id, reason)
	if err != nil {
		return fmt.Errorf("update stock log reason: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete corrección admin: borra la fila sin tocar el artículo.
func (r *StockLogRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock log: %w", err)
	}
	return nil
}
