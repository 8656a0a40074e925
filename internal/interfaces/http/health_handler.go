package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-service/internal/application/dto"
)

// Pinger comprueba la conexión con la base de datos (*pgxpool.Pool lo cumple).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler liveness + readiness de la base de datos.
type HealthHandler struct {
	service string
	db      Pinger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(service string, db Pinger) *HealthHandler {
	return &HealthHandler{service: service, db: db}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	out := dto.HealthResponse{Status: "ok", Service: h.service, Database: "ok"}
	if h.db == nil {
		out.Database = "unknown"
		return c.JSON(out)
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		out.Status = "degraded"
		out.Database = "unreachable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(out)
	}
	return c.JSON(out)
}
