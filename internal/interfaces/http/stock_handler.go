package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// StockHandler maneja las mutaciones de stock con auditoría (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Mutate godoc
// @Summary      Entrada o salida de stock de un artículo
// @Description  Aplica el protocolo de mutación: validar, actualizar cantidad
//
//	y registrar la fila de auditoría. Un rechazo (422) no produce
//	escrituras; un 500 con código PARTIAL_WRITE indica cantidad
//	actualizada sin fila de log.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "UUID del artículo"
// @Param        body  body  dto.MutateStockRequest  true  "action (add|remove), amount, unit_price (add), reason, delivery_note"
// @Success      200   {object}  dto.MutateStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/articles/{id}/stock [post]
func (h *StockHandler) Mutate(c *fiber.Ctx) error {
	var in dto.MutateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.ApplyMutation(c.Context(), stock.MutationInput{
		ArticleID:    c.Params("id"),
		Action:       in.Action,
		Amount:       in.Amount,
		UnitPrice:    in.UnitPrice,
		Reason:       in.Reason,
		DeliveryNote: in.DeliveryNote,
		Actor:        GetActor(c),
	})
	if err != nil {
		var rejected *stock.RejectedError
		if errors.As(err, &rejected) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "REJECTED", Message: rejected.Reason})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no permite ajustar stock"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "action debe ser add o remove"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		if errors.Is(err, domain.ErrPartialWrite) {
			// La cantidad quedó escrita pero la auditoría no: el caller debe saberlo.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PARTIAL_WRITE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MutateStockResponse{
		Article: *usecase.ToArticleResponse(result.Article),
		Log:     *usecase.ToStockLogResponse(result.Log),
	})
}
