package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/application/barrel"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ barrel.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a
// esa tx. Si fn devuelve error la tx se revierte.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre la transacción, construye los repos sobre ella y ejecuta fn.
func (t *TxRunner) Run(ctx context.Context, fn func(
	barrelRepo repository.BarrelRepository,
	historyRepo repository.BarrelHistoryRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(NewBarrelRepository(tx), NewBarrelHistoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
