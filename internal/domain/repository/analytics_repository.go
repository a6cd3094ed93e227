package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementsPerDay total de entradas y salidas de un día (para las gráficas).
type MovementsPerDay struct {
	Day     time.Time
	Added   decimal.Decimal
	Removed decimal.Decimal
}

// InventorySummary métricas agregadas del inventario actual.
type InventorySummary struct {
	ArticleCount  int
	TotalValue    decimal.Decimal // sum(quantity * unit_price)
	LowStockCount int             // artículos por debajo del 10% de capacidad
	BarrelCount   int
	TotalLiters   decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	GetInventorySummary(ctx context.Context) (*InventorySummary, error)
	// GetMovementsPerDay agrega los movimientos del log por día dentro del
	// rango [from, to]. Días sin movimientos no se devuelven.
	GetMovementsPerDay(ctx context.Context, from, to time.Time) ([]MovementsPerDay, error)
}
