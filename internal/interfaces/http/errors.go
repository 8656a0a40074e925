package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-service/internal/application/dto"
	"github.com/jhoicas/stock-service/internal/domain"
	"github.com/jhoicas/stock-service/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-service/pkg/logger"
)

// badRequest responde 400 con el código indicado.
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// clientError traduce los errores de validación comunes a 400. Devuelve false si err no lo es.
func clientError(c *fiber.Ctx, err error) (bool, error) {
	switch {
	case errors.Is(err, domain.ErrNoFilters):
		return true, badRequest(c, "NO_FILTERS", "no se indicaron parámetros de filtrado")
	case errors.Is(err, domain.ErrInvalidInput):
		return true, badRequest(c, "VALIDATION", err.Error())
	}
	return false, nil
}

// internalError registra el error original y responde 500 con un mensaje genérico:
// el detalle de la base de datos no sale en la respuesta.
func internalError(c *fiber.Ctx, log *logger.Logger, err error, message string) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("pg_code", postgres.ErrorCode(err)).
		Str("request_id", requestID(c)).
		Msg(message)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: message})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
