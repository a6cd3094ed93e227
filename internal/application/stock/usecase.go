package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Acciones de mutación.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Razones de rechazo de una mutación. Se validan en este orden, antes de
// cualquier escritura.
const (
	ReasonInvalidAmount        = "invalid amount"
	ReasonMissingPrice         = "missing price"
	ReasonInsufficientQuantity = "insufficient quantity"
	ReasonExceedsCapacity      = "exceeds capacity"
)

// Actor es el contexto de autorización explícito de la mutación: quién actúa
// y con qué rol. El rol viene resuelto externamente (sesión → lookup).
type Actor struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      authz.Role
}

// Label devuelve la etiqueta humana del actor para el log de auditoría.
func (a Actor) Label() string {
	u := entity.User{FirstName: a.FirstName, LastName: a.LastName, Email: a.Email}
	return u.DisplayLabel()
}

// MutationInput entrada de ApplyMutation.
type MutationInput struct {
	ArticleID    string
	Action       string // add, remove
	Amount       decimal.Decimal
	UnitPrice    *decimal.Decimal // obligatorio en add, ignorado en remove
	Reason       string
	DeliveryNote string // solo tiene sentido en add
	Actor        Actor
}

// RejectedError indica que la mutación no pasó las precondiciones. Ninguna
// escritura ocurrió; el usuario corrige la entrada y reintenta.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return "mutación rechazada: " + e.Reason }

// Result resultado de una mutación aceptada: el artículo ya actualizado y el
// registro de auditoría creado.
type Result struct {
	Article *entity.Article
	Log     *entity.StockLog
}

// UseCase implementa el protocolo de mutación de stock con auditoría:
// validar → escribir cantidad → escribir log. Las dos escrituras son
// independientes, sin transacción que las cruce; si la segunda falla el
// resultado es un fallo parcial observable (domain.ErrPartialWrite), igual
// que en el dashboard original. Tampoco se serializan mutaciones
// concurrentes sobre el mismo artículo: gana la última escritura.
type UseCase struct {
	articleRepo repository.ArticleRepository
	logRepo     repository.StockLogRepository
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(articleRepo repository.ArticleRepository, logRepo repository.StockLogRepository) *UseCase {
	return &UseCase{articleRepo: articleRepo, logRepo: logRepo, now: time.Now}
}

// ApplyMutation aplica una mutación de stock. El gating por rol vive aquí y
// no en los handlers: cualquier caller nuevo pasa por el mismo chequeo de
// adjust_stock, resuelto desde el rol del actor.
//
// Precondiciones, en orden:
//  1. Amount finito y > 0                → RejectedError("invalid amount")
//  2. add requiere UnitPrice > 0         → RejectedError("missing price")
//  3. newQuantity >= 0                   → RejectedError("insufficient quantity")
//  4. newQuantity <= MaxCapacity         → RejectedError("exceeds capacity")
//
// Un rechazo es terminal y no produce escrituras ni log.
func (uc *UseCase) ApplyMutation(ctx context.Context, in MutationInput) (*Result, error) {
	if !authz.Resolve(in.Actor.Role).AdjustStock {
		return nil, domain.ErrForbidden
	}
	if in.Action != ActionAdd && in.Action != ActionRemove {
		return nil, domain.ErrInvalidInput
	}

	article, err := uc.articleRepo.GetByID(ctx, in.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}

	if !in.Amount.IsPositive() {
		return nil, &RejectedError{Reason: ReasonInvalidAmount}
	}
	if in.Action == ActionAdd && (in.UnitPrice == nil || !in.UnitPrice.IsPositive()) {
		return nil, &RejectedError{Reason: ReasonMissingPrice}
	}

	newQuantity := article.Quantity.Sub(in.Amount)
	delta := in.Amount.Neg()
	if in.Action == ActionAdd {
		newQuantity = article.Quantity.Add(in.Amount)
		delta = in.Amount
	}
	if newQuantity.IsNegative() {
		return nil, &RejectedError{Reason: ReasonInsufficientQuantity}
	}
	if newQuantity.GreaterThan(article.MaxCapacity) {
		return nil, &RejectedError{Reason: ReasonExceedsCapacity}
	}

	// Escritura 1: cantidad del artículo (y último precio en entradas).
	var priceUpdate *decimal.Decimal
	if in.Action == ActionAdd {
		priceUpdate = in.UnitPrice
	}
	if err := uc.articleRepo.UpdateQuantity(ctx, article.ID, newQuantity, priceUpdate); err != nil {
		return nil, fmt.Errorf("actualizar cantidad: %w", err)
	}

	log := &entity.StockLog{
		ID:           uuid.New().String(),
		ArticleID:    article.ID,
		ArticleName:  article.Name,
		ActorLabel:   in.Actor.Label(),
		Action:       in.Action,
		OldQuantity:  article.Quantity,
		NewQuantity:  newQuantity,
		Delta:        delta,
		Reason:       in.Reason,
		CreatedAt:    uc.now(),
	}
	if in.Action == ActionAdd {
		total := in.Amount.Mul(*in.UnitPrice)
		log.UnitPrice = in.UnitPrice
		log.TotalCost = &total
		log.DeliveryNote = in.DeliveryNote
	}

	// Escritura 2: log de auditoría. Si falla, la cantidad ya quedó
	// actualizada y no hay reconciliación automática.
	if err := uc.logRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPartialWrite, err.Error())
	}

	updated := *article
	updated.Quantity = newQuantity
	if priceUpdate != nil {
		updated.UnitPrice = *priceUpdate
	}
	return &Result{Article: &updated, Log: log}, nil
}
