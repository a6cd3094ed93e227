package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO métricas agregadas para las tarjetas del dashboard.
type DashboardSummaryDTO struct {
	ArticleCount  int             `json:"article_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
	BarrelCount   int             `json:"barrel_count"`
	TotalLiters   decimal.Decimal `json:"total_liters"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// MovementsPerDayDTO punto de la gráfica de movimientos.
type MovementsPerDayDTO struct {
	Day     string          `json:"day"` // YYYY-MM-DD
	Added   decimal.Decimal `json:"added"`
	Removed decimal.Decimal `json:"removed"`
}
