package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/stock-service/internal/application/ports"
	"github.com/jhoicas/stock-service/internal/domain/entity"
	"github.com/jhoicas/stock-service/pkg/config"
	"github.com/jhoicas/stock-service/pkg/logger"
)

var _ ports.AuditNotifier = (*Client)(nil)

const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

// NotificationRecorder registra el resultado de cada notificación (métricas).
type NotificationRecorder interface {
	ObserveNotification(action, result string)
}

// actionRequest cuerpo aceptado por el servicio de historial.
type actionRequest struct {
	ActionType string         `json:"action_type"`
	ProductID  int64          `json:"product_id"`
	ShopID     *int64         `json:"shop_id"`
	Details    map[string]any `json:"details"`
}

// Client adaptador HTTP hacia el servicio de historial.
// Notify no bloquea: cada envío corre en su propia goroutine, sin reintentos; los fallos
// solo se registran en el log y en métricas. Close espera los envíos en curso; tras Close
// los eventos nuevos se descartan.
type Client struct {
	http    *resty.Client
	url     string
	log     *logger.Logger
	metrics NotificationRecorder

	mu     sync.Mutex // protege closed y el wg.Add frente a Close
	closed bool
	wg     sync.WaitGroup
}

// NewClient construye el cliente. metrics puede ser nil.
func NewClient(cfg config.HistoryConfig, log *logger.Logger, metrics NotificationRecorder) *Client {
	rc := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	return &Client{
		http:    rc,
		url:     cfg.URL,
		log:     log.Named("history"),
		metrics: metrics,
	}
}

// Notify envía el evento en segundo plano. El contexto de la petición no cancela el envío.
func (c *Client) Notify(ctx context.Context, event entity.AuditEvent) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.log.Warn().
			Str("action_type", string(event.Action)).
			Int64("product_id", event.ProductID).
			Msg("cliente de historial cerrado, acción descartada")
		c.observe(event.Action, ResultDropped)
		return
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.send(context.WithoutCancel(ctx), event)
	}()
}

// Close espera a que terminen los envíos en curso o a que venza ctx.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("esperar notificaciones pendientes: %w", ctx.Err())
	}
}

func (c *Client) send(ctx context.Context, event entity.AuditEvent) {
	requestID := uuid.NewString()
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Str("request_id", requestID).Msg("notificación al historial")
			c.observe(event.Action, ResultFailed)
		}
	}()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(actionRequest{
			ActionType: string(event.Action),
			ProductID:  event.ProductID,
			ShopID:     event.ShopID,
			Details:    event.Details,
		}).
		Post(c.url)
	if err != nil {
		c.log.Error().Err(err).
			Str("action_type", string(event.Action)).
			Int64("product_id", event.ProductID).
			Str("request_id", requestID).
			Msg("error al registrar acción en el historial")
		c.observe(event.Action, ResultFailed)
		return
	}
	if !resp.IsSuccess() {
		c.log.Error().
			Int("status", resp.StatusCode()).
			Str("action_type", string(event.Action)).
			Int64("product_id", event.ProductID).
			Str("request_id", requestID).
			Msg("el historial rechazó la acción")
		c.observe(event.Action, ResultFailed)
		return
	}
	c.log.Debug().Str("action_type", string(event.Action)).Str("request_id", requestID).Msg("acción registrada en el historial")
	c.observe(event.Action, ResultSent)
}

func (c *Client) observe(action entity.AuditAction, result string) {
	if c.metrics != nil {
		c.metrics.ObserveNotification(string(action), result)
	}
}
