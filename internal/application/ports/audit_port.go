package ports

import (
	"context"

	"github.com/jhoicas/stock-service/internal/domain/entity"
)

// AuditNotifier define el puerto de salida hacia el servicio de historial.
// Es best-effort: no devuelve error y su resultado no forma parte del éxito de la operación
// que lo dispara. Las implementaciones no deben bloquear ni reintentar.
type AuditNotifier interface {
	Notify(ctx context.Context, event entity.AuditEvent)
}

// MutationRecorder registra el resultado de las mutaciones de stock (métricas).
type MutationRecorder interface {
	ObserveStockMutation(operation, outcome string)
}
