package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AuditUseCase lectura del log de stock y camino de corrección admin.
// Editar o borrar una fila es un override privilegiado fuera del protocolo
// normal: NUNCA recalcula la cantidad actual del artículo.
type AuditUseCase struct {
	logRepo repository.StockLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(logRepo repository.StockLogRepository) *AuditUseCase {
	return &AuditUseCase{logRepo: logRepo}
}

// List lista el log con filtros, más reciente primero, con total para la
// paginación del frontend.
func (uc *AuditUseCase) List(ctx context.Context, filter repository.StockLogFilter) ([]*dto.StockLogResponse, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	logs, err := uc.logRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.logRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.StockLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToStockLogResponse(l))
	}
	return out, total, nil
}

// UpdateReason corrige el comentario de una fila. Solo admin.
func (uc *AuditUseCase) UpdateReason(ctx context.Context, id, reason string, actor stock.Actor) error {
	if actor.Role != authz.RoleAdmin {
		return domain.ErrForbidden
	}
	log, err := uc.logRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if log == nil {
		return domain.ErrNotFound
	}
	return uc.logRepo.UpdateReason(ctx, id, reason)
}

// Delete borra una fila del log. Solo admin. La cantidad del artículo queda
// tal cual está.
func (uc *AuditUseCase) Delete(ctx context.Context, id string, actor stock.Actor) error {
	if actor.Role != authz.RoleAdmin {
		return domain.ErrForbidden
	}
	log, err := uc.logRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if log == nil {
		return domain.ErrNotFound
	}
	return uc.logRepo.Delete(ctx, id)
}

// ToStockLogResponse convierte la entidad a DTO.
func ToStockLogResponse(l *entity.StockLog) *dto.StockLogResponse {
	if l == nil {
		return nil
	}
	return &dto.StockLogResponse{
		ID:           l.ID,
		ArticleID:    l.ArticleID,
		ArticleName:  l.ArticleName,
		ActorLabel:   l.ActorLabel,
		Action:       l.Action,
		OldQuantity:  l.OldQuantity,
		NewQuantity:  l.NewQuantity,
		Delta:        l.Delta,
		UnitPrice:    l.UnitPrice,
		TotalCost:    l.TotalCost,
		Reason:       l.Reason,
		DeliveryNote: l.DeliveryNote,
		CreatedAt:    l.CreatedAt,
	}
}
