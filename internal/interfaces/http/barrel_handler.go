package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/barrel"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// BarrelHandler maneja el inventario líquido: barriles, recargas, consumos,
// diluciones y su historia (protegido).
type BarrelHandler struct {
	uc *barrel.UseCase
}

// NewBarrelHandler construye el handler.
func NewBarrelHandler(uc *barrel.UseCase) *BarrelHandler {
	return &BarrelHandler{uc: uc}
}

// Create godoc
// @Summary      Crear barril
// @Tags         barrels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBarrelRequest  true  "name, contents, liters, capacity_liters, price_per_liter, supplier"
// @Success      201   {object}  dto.BarrelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/barrels [post]
func (h *BarrelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBarrelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	b := &entity.Barrel{
		Name:           in.Name,
		Contents:       in.Contents,
		Liters:         in.Liters,
		CapacityLiters: in.CapacityLiters,
		PricePerLiter:  in.PricePerLiter,
		Supplier:       in.Supplier,
	}
	if err := h.uc.Create(c.Context(), b, GetActor(c)); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toBarrelResponse(b))
}

// List godoc
// @Summary      Listar barriles
// @Tags         barrels
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BarrelResponse
// @Router       /api/barrels [get]
func (h *BarrelHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	barrels, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]*dto.BarrelResponse, 0, len(barrels))
	for _, b := range barrels {
		out = append(out, toBarrelResponse(b))
	}
	return c.JSON(fiber.Map{"total": len(out), "barrels": out})
}

// GetByID godoc
// @Summary      Obtener barril
// @Tags         barrels
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UUID del barril"
// @Success      200  {object}  dto.BarrelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/barrels/{id} [get]
func (h *BarrelHandler) GetByID(c *fiber.Ctx) error {
	b, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "barril no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toBarrelResponse(b))
}

// Delete godoc
// @Summary      Eliminar barril
// @Tags         barrels
// @Security     Bearer
// @Param        id  path  string  true  "UUID del barril"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/barrels/{id} [delete]
func (h *BarrelHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetActor(c)); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo admin puede eliminar barriles"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "barril no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Fill godoc
// @Summary      Recargar barril
// @Tags         barrels
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "UUID del barril"
// @Param        body  body  dto.BarrelChangeRequest  true  "liters, price_per_liter, note"
// @Success      200   {object}  map[string]string
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/barrels/{id}/fill [post]
func (h *BarrelHandler) Fill(c *fiber.Ctx) error {
	return h.change(c, h.uc.Fill)
}

// Drain godoc
// @Summary      Consumir litros del barril
// @Tags         barrels
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "UUID del barril"
// @Param        body  body  dto.BarrelChangeRequest  true  "liters, note"
// @Success      200   {object}  map[string]string
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/barrels/{id}/drain [post]
func (h *BarrelHandler) Drain(c *fiber.Ctx) error {
	return h.change(c, h.uc.Drain)
}

// Dilute godoc
// @Summary      Diluir el barril con agua
// @Tags         barrels
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "UUID del barril"
// @Param        body  body  dto.BarrelChangeRequest  true  "liters (de agua), note"
// @Success      200   {object}  map[string]string
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/barrels/{id}/dilute [post]
func (h *BarrelHandler) Dilute(c *fiber.Ctx) error {
	return h.change(c, h.uc.Dilute)
}

// change factoriza el parseo y mapeo de errores común a fill/drain/dilute.
func (h *BarrelHandler) change(c *fiber.Ctx, apply func(ctx context.Context, in barrel.ChangeInput) error) error {
	var in dto.BarrelChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := apply(c.Context(), barrel.ChangeInput{
		BarrelID:      c.Params("id"),
		Liters:        in.Liters,
		PricePerLiter: in.PricePerLiter,
		Note:          in.Note,
		Actor:         GetActor(c),
	})
	if err != nil {
		var rejected *stock.RejectedError
		if errors.As(err, &rejected) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "REJECTED", Message: rejected.Reason})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no permite ajustar stock"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "barril no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "cambio registrado"})
}

// History godoc
// @Summary      Historia de cambios del barril
// @Tags         barrels
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UUID del barril"
// @Success      200  {array}  dto.BarrelHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/barrels/{id}/history [get]
func (h *BarrelHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	rows, err := h.uc.History(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "barril no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]*dto.BarrelHistoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBarrelHistoryResponse(r))
	}
	return c.JSON(fiber.Map{"total": len(out), "history": out})
}

func toBarrelResponse(b *entity.Barrel) *dto.BarrelResponse {
	if b == nil {
		return nil
	}
	return &dto.BarrelResponse{
		ID:             b.ID,
		Name:           b.Name,
		Contents:       b.Contents,
		Liters:         b.Liters,
		CapacityLiters: b.CapacityLiters,
		PricePerLiter:  b.PricePerLiter,
		Supplier:       b.Supplier,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func toBarrelHistoryResponse(h *entity.BarrelHistory) *dto.BarrelHistoryResponse {
	if h == nil {
		return nil
	}
	return &dto.BarrelHistoryResponse{
		ID:            h.ID,
		BarrelID:      h.BarrelID,
		ActorLabel:    h.ActorLabel,
		ChangeType:    h.ChangeType,
		OldLiters:     h.OldLiters,
		NewLiters:     h.NewLiters,
		PricePerLiter: h.PricePerLiter,
		DilutionRatio: h.DilutionRatio,
		Note:          h.Note,
		CreatedAt:     h.CreatedAt,
	}
}
