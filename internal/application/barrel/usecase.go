package barrel

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase maneja el inventario líquido: recargas, consumos y diluciones de
// barriles, con una fila de historia por cada cambio aceptado.
//
// A diferencia del protocolo de artículos (dos escrituras independientes),
// los barriles escriben nivel + historia dentro de una transacción con
// bloqueo de fila. Es el camino nuevo; el de artículos conserva el
// comportamiento del dashboard original.
type UseCase struct {
	txRunner    TxRunner
	barrelRepo  repository.BarrelRepository
	historyRepo repository.BarrelHistoryRepository
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, barrelRepo repository.BarrelRepository, historyRepo repository.BarrelHistoryRepository) *UseCase {
	return &UseCase{txRunner: txRunner, barrelRepo: barrelRepo, historyRepo: historyRepo, now: time.Now}
}

// ChangeInput entrada para un cambio de nivel de barril.
type ChangeInput struct {
	BarrelID      string
	Liters        decimal.Decimal  // litros a añadir/retirar/diluir, siempre > 0
	PricePerLiter *decimal.Decimal // obligatorio en recargas
	Note          string
	Actor         stock.Actor
}

// Fill recarga el barril. Requiere adjust_stock y precio por litro > 0.
func (uc *UseCase) Fill(ctx context.Context, in ChangeInput) error {
	if !authz.Resolve(in.Actor.Role).AdjustStock {
		return domain.ErrForbidden
	}
	if !in.Liters.IsPositive() {
		return &stock.RejectedError{Reason: stock.ReasonInvalidAmount}
	}
	if in.PricePerLiter == nil || !in.PricePerLiter.IsPositive() {
		return &stock.RejectedError{Reason: stock.ReasonMissingPrice}
	}
	return uc.applyChange(ctx, in, entity.BarrelChangeFill)
}

// Drain retira litros del barril. Requiere adjust_stock.
func (uc *UseCase) Drain(ctx context.Context, in ChangeInput) error {
	if !authz.Resolve(in.Actor.Role).AdjustStock {
		return domain.ErrForbidden
	}
	if !in.Liters.IsPositive() {
		return &stock.RejectedError{Reason: stock.ReasonInvalidAmount}
	}
	return uc.applyChange(ctx, in, entity.BarrelChangeDrain)
}

// Dilute añade agua al barril: sube el volumen y registra la proporción
// agua añadida / litros previos como ratio de dilución en la historia.
func (uc *UseCase) Dilute(ctx context.Context, in ChangeInput) error {
	if !authz.Resolve(in.Actor.Role).AdjustStock {
		return domain.ErrForbidden
	}
	if !in.Liters.IsPositive() {
		return &stock.RejectedError{Reason: stock.ReasonInvalidAmount}
	}
	return uc.applyChange(ctx, in, entity.BarrelChangeDilute)
}

func (uc *UseCase) applyChange(ctx context.Context, in ChangeInput, changeType string) error {
	now := uc.now()
	return uc.txRunner.Run(ctx, func(
		barrelRepo repository.BarrelRepository,
		historyRepo repository.BarrelHistoryRepository,
	) error {
		b, err := barrelRepo.GetForUpdate(ctx, in.BarrelID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}

		oldLiters := b.Liters
		var newLiters decimal.Decimal
		var ratio *decimal.Decimal
		switch changeType {
		case entity.BarrelChangeDrain:
			newLiters = oldLiters.Sub(in.Liters)
		case entity.BarrelChangeDilute:
			newLiters = oldLiters.Add(in.Liters)
			if oldLiters.IsPositive() {
				r := in.Liters.Div(oldLiters)
				ratio = &r
			}
		default:
			newLiters = oldLiters.Add(in.Liters)
		}

		if newLiters.IsNegative() {
			return &stock.RejectedError{Reason: stock.ReasonInsufficientQuantity}
		}
		if newLiters.GreaterThan(b.CapacityLiters) {
			return &stock.RejectedError{Reason: stock.ReasonExceedsCapacity}
		}

		b.Liters = newLiters
		b.UpdatedAt = now
		if changeType == entity.BarrelChangeFill && in.PricePerLiter != nil {
			b.PricePerLiter = *in.PricePerLiter
		}
		if err := barrelRepo.Update(ctx, b); err != nil {
			return err
		}

		h := &entity.BarrelHistory{
			ID:            uuid.New().String(),
			BarrelID:      b.ID,
			ActorLabel:    in.Actor.Label(),
			ChangeType:    changeType,
			OldLiters:     oldLiters,
			NewLiters:     newLiters,
			DilutionRatio: ratio,
			Note:          in.Note,
			CreatedAt:     now,
		}
		if changeType == entity.BarrelChangeFill {
			h.PricePerLiter = in.PricePerLiter
		}
		return historyRepo.Create(ctx, h)
	})
}

// History devuelve la historia de un barril, más reciente primero.
func (uc *UseCase) History(ctx context.Context, barrelID string, limit, offset int) ([]*entity.BarrelHistory, error) {
	b, err := uc.barrelRepo.GetByID(ctx, barrelID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return uc.historyRepo.ListByBarrel(ctx, barrelID, limit, offset)
}

// Get devuelve un barril por id.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Barrel, error) {
	b, err := uc.barrelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// List lista los barriles.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.Barrel, error) {
	return uc.barrelRepo.List(ctx, limit, offset)
}

// Create crea un barril. Requiere manage_articles.
func (uc *UseCase) Create(ctx context.Context, b *entity.Barrel, actor stock.Actor) error {
	if !authz.Resolve(actor.Role).ManageArticles {
		return domain.ErrForbidden
	}
	if b.Name == "" || !b.CapacityLiters.IsPositive() {
		return domain.ErrInvalidInput
	}
	if b.Liters.IsNegative() || b.Liters.GreaterThan(b.CapacityLiters) {
		return domain.ErrInvalidInput
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := uc.now()
	b.CreatedAt = now
	b.UpdatedAt = now
	return uc.barrelRepo.Create(ctx, b)
}

// Delete elimina un barril. Requiere delete_articles (solo admin).
func (uc *UseCase) Delete(ctx context.Context, id string, actor stock.Actor) error {
	if !authz.Resolve(actor.Role).DeleteArticles {
		return domain.ErrForbidden
	}
	b, err := uc.barrelRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.barrelRepo.Delete(ctx, id)
}
