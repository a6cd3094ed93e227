package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TTL corto: los agregados alimentan tarjetas y gráficas, no decisiones de
// stock, así que un minuto de datos viejos es aceptable.
const statsTTL = time.Minute

// DashboardUseCase agrega métricas de inventario para las tarjetas y
// gráficas del dashboard, con caché Redis por consulta.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         ports.StatsCache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache ports.StatsCache) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache}
}

// GetSummary devuelve las métricas agregadas del inventario actual.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	const key = "stats:summary"
	if cached, ok := uc.fromCache(ctx, key); ok {
		var out dto.DashboardSummaryDTO
		if err := json.Unmarshal(cached, &out); err == nil {
			return &out, nil
		}
	}

	summary, err := uc.analyticsRepo.GetInventorySummary(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardSummaryDTO{
		ArticleCount:  summary.ArticleCount,
		TotalValue:    summary.TotalValue,
		LowStockCount: summary.LowStockCount,
		BarrelCount:   summary.BarrelCount,
		TotalLiters:   summary.TotalLiters,
		GeneratedAt:   time.Now(),
	}
	uc.toCache(ctx, key, out)
	return out, nil
}

// GetMovementsPerDay devuelve los movimientos agregados por día de los
// últimos `days` días, para la gráfica de barras.
func (uc *DashboardUseCase) GetMovementsPerDay(ctx context.Context, days int) ([]dto.MovementsPerDayDTO, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	key := fmt.Sprintf("stats:movements:%dd", days)
	if cached, ok := uc.fromCache(ctx, key); ok {
		var out []dto.MovementsPerDayDTO
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)
	rows, err := uc.analyticsRepo.GetMovementsPerDay(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementsPerDayDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementsPerDayDTO{
			Day:     r.Day.Format("2006-01-02"),
			Added:   r.Added,
			Removed: r.Removed,
		})
	}
	uc.toCache(ctx, key, out)
	return out, nil
}

// fromCache lee la clave; los errores de caché se tratan como miss.
func (uc *DashboardUseCase) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if uc.cache == nil {
		return nil, false
	}
	b, err := uc.cache.Get(ctx, key)
	if err != nil || b == nil {
		return nil, false
	}
	return b, true
}

// toCache guarda el valor serializado; fallos de caché no rompen la consulta.
func (uc *DashboardUseCase) toCache(ctx context.Context, key string, v any) {
	if uc.cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = uc.cache.Set(ctx, key, b, statsTTL)
}
