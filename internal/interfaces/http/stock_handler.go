package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-service/internal/application/dto"
	"github.com/jhoicas/stock-service/internal/application/usecase"
	"github.com/jhoicas/stock-service/internal/domain"
	"github.com/jhoicas/stock-service/internal/domain/repository"
	"github.com/jhoicas/stock-service/pkg/logger"
)

// StockHandler maneja las peticiones HTTP de stock por tienda.
type StockHandler struct {
	uc  *usecase.StockUseCase
	log *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear stock de un producto en una tienda
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "product_id, shop_id, on_shelf (opcional), in_order (opcional)"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if ok, resp := clientError(c, err); ok {
			return resp
		}
		return internalError(c, h.log, err, "no se pudo crear el stock")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Increase godoc
// @Summary      Aumentar stock en estantería
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockQuantityRequest  true  "stock_id y quantity"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stocks/increase [patch]
func (h *StockHandler) Increase(c *fiber.Ctx) error {
	var in dto.StockQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Increase(c.UserContext(), in)
	if err != nil {
		if ok, resp := clientError(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "stock no encontrado"})
		}
		return internalError(c, h.log, err, "no se pudo aumentar el stock")
	}
	return c.JSON(out)
}

// Decrease godoc
// @Summary      Disminuir stock en estantería
// @Description  Falla con 400 si el stock no alcanza o no existe (no se distinguen ambos casos).
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockQuantityRequest  true  "stock_id y quantity"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stocks/decrease [patch]
func (h *StockHandler) Decrease(c *fiber.Ctx) error {
	var in dto.StockQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Decrease(c.UserContext(), in)
	if err != nil {
		if ok, resp := clientError(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return badRequest(c, "INSUFFICIENT_STOCK", "stock insuficiente o no encontrado")
		}
		return internalError(c, h.log, err, "no se pudo disminuir el stock")
	}
	return c.JSON(out)
}

// Find godoc
// @Summary      Consultar stock con filtros
// @Description  Requiere al menos un filtro. Sin coincidencias responde una lista vacía.
// @Tags         stocks
// @Produce      json
// @Param        plu           query  string  false  "PLU exacto"
// @Param        shop_id       query  int     false  "Tienda"
// @Param        on_shelf_min  query  int     false  "Mínimo en estantería (inclusive)"
// @Param        on_shelf_max  query  int     false  "Máximo en estantería (inclusive)"
// @Param        in_order_min  query  int     false  "Mínimo en pedido (inclusive)"
// @Param        in_order_max  query  int     false  "Máximo en pedido (inclusive)"
// @Success      200           {array}   dto.StockViewResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      500           {object}  dto.ErrorResponse
// @Router       /api/stocks [get]
func (h *StockHandler) Find(c *fiber.Ctx) error {
	out, err := h.uc.Find(c.UserContext(), repository.Filters(c.Queries()))
	if err != nil {
		if ok, resp := clientError(c, err); ok {
			return resp
		}
		return internalError(c, h.log, err, "no se pudieron obtener los stocks")
	}
	return c.JSON(out)
}
