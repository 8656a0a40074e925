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

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "plu y name"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if ok, resp := clientError(c, err); ok {
			return resp
		}
		return internalError(c, h.log, err, "no se pudo crear el producto")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Find godoc
// @Summary      Buscar productos
// @Description  Requiere al menos un filtro. Sin coincidencias responde 404.
// @Tags         products
// @Produce      json
// @Param        plu   query  string  false  "PLU exacto"
// @Param        name  query  string  false  "Subcadena del nombre (sin distinguir mayúsculas)"
// @Success      200   {array}   dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) Find(c *fiber.Ctx) error {
	out, err := h.uc.Find(c.UserContext(), repository.Filters(c.Queries()))
	if err != nil {
		if ok, resp := clientError(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "productos no encontrados"})
		}
		return internalError(c, h.log, err, "no se pudieron obtener los productos")
	}
	return c.JSON(out)
}
