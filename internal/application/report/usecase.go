package report

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// InventoryReportData todo lo que necesita el generador para pintar el PDF.
type InventoryReportData struct {
	GeneratedAt time.Time
	GeneratedBy string // etiqueta del actor
	Articles    []*entity.Article
	Barrels     []*entity.Barrel
	RecentLogs  []*entity.StockLog
}

// PDFGenerator puerto hacia la generación del PDF (lo implementa
// pdf.MarotoReportGenerator).
type PDFGenerator interface {
	GenerateInventoryReport(ctx context.Context, data *InventoryReportData) ([]byte, error)
}

// UseCase arma el reporte de inventario: catálogo completo, barriles y los
// últimos movimientos del log.
type UseCase struct {
	articleRepo repository.ArticleRepository
	barrelRepo  repository.BarrelRepository
	logRepo     repository.StockLogRepository
	generator   PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	articleRepo repository.ArticleRepository,
	barrelRepo repository.BarrelRepository,
	logRepo repository.StockLogRepository,
	generator PDFGenerator,
) *UseCase {
	return &UseCase{articleRepo: articleRepo, barrelRepo: barrelRepo, logRepo: logRepo, generator: generator}
}

// GenerateInventoryPDF genera el PDF. Requiere access_admin_panel.
func (uc *UseCase) GenerateInventoryPDF(ctx context.Context, actorRole authz.Role, actorLabel string) ([]byte, error) {
	if !authz.Resolve(actorRole).AccessAdminPanel {
		return nil, domain.ErrForbidden
	}
	// Límites fijos: el reporte es una foto, no un export completo.
	articles, err := uc.articleRepo.List(ctx, 500, 0)
	if err != nil {
		return nil, err
	}
	barrels, err := uc.barrelRepo.List(ctx, 100, 0)
	if err != nil {
		return nil, err
	}
	logs, err := uc.logRepo.List(ctx, repository.StockLogFilter{Limit: 50})
	if err != nil {
		return nil, err
	}
	data := &InventoryReportData{
		GeneratedAt: time.Now(),
		GeneratedBy: actorLabel,
		Articles:    articles,
		Barrels:     barrels,
		RecentLogs:  logs,
	}
	return uc.generator.GenerateInventoryReport(ctx, data)
}
