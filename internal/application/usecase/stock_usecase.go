package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jhoicas/stock-service/internal/application/dto"
	"github.com/jhoicas/stock-service/internal/application/ports"
	"github.com/jhoicas/stock-service/internal/domain"
	"github.com/jhoicas/stock-service/internal/domain/entity"
	"github.com/jhoicas/stock-service/internal/domain/repository"
)

// Operaciones y resultados reportados al MutationRecorder.
const (
	OpIncrease = "increase"
	OpDecrease = "decrease"

	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// maxQuantity tope de las columnas integer de stock.
const maxQuantity = math.MaxInt32

// StockUseCase alta, mutación y consulta de stock por tienda.
// La no negatividad de on_shelf la garantiza el UPDATE condicionado del repositorio,
// no un bloqueo en la aplicación.
type StockUseCase struct {
	repo    repository.StockRepository
	audit   ports.AuditNotifier
	metrics ports.MutationRecorder
}

// NewStockUseCase construye el caso de uso. metrics puede ser nil.
func NewStockUseCase(repo repository.StockRepository, audit ports.AuditNotifier, metrics ports.MutationRecorder) *StockUseCase {
	return &StockUseCase{repo: repo, audit: audit, metrics: metrics}
}

// Create crea una fila de stock. No se valida unicidad de (product_id, shop_id).
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.ProductID <= 0 || in.ShopID <= 0 {
		return nil, fmt.Errorf("%w: product_id y shop_id son requeridos", domain.ErrInvalidInput)
	}
	stock := &entity.Stock{ProductID: in.ProductID, ShopID: in.ShopID}
	if in.OnShelf != nil {
		stock.OnShelf = *in.OnShelf
	}
	if in.InOrder != nil {
		stock.InOrder = *in.InOrder
	}
	if stock.OnShelf < 0 {
		return nil, fmt.Errorf("%w: on_shelf no puede ser negativo", domain.ErrInvalidInput)
	}
	if stock.OnShelf > maxQuantity || stock.InOrder > maxQuantity || stock.InOrder < math.MinInt32 {
		return nil, fmt.Errorf("%w: on_shelf e in_order deben caber en un entero de 32 bits", domain.ErrInvalidInput)
	}

	created, err := uc.repo.Create(ctx, stock)
	if err != nil {
		return nil, err
	}
	shopID := created.ShopID
	uc.audit.Notify(ctx, entity.AuditEvent{
		Action:    entity.ActionCreateStock,
		ProductID: created.ProductID,
		ShopID:    &shopID,
		Details:   map[string]any{"on_shelf": created.OnShelf, "in_order": created.InOrder},
	})
	return toStockResponse(created), nil
}

// Increase suma quantity a on_shelf. ErrNotFound si stock_id no existe.
func (uc *StockUseCase) Increase(ctx context.Context, in dto.StockQuantityRequest) (*dto.StockResponse, error) {
	return uc.mutate(ctx, OpIncrease, entity.ActionIncreaseStock, in, uc.repo.Increase)
}

// Decrease resta quantity de on_shelf si alcanza. ErrInsufficientStock tanto si no alcanza
// como si stock_id no existe.
func (uc *StockUseCase) Decrease(ctx context.Context, in dto.StockQuantityRequest) (*dto.StockResponse, error) {
	return uc.mutate(ctx, OpDecrease, entity.ActionDecreaseStock, in, uc.repo.Decrease)
}

func (uc *StockUseCase) mutate(
	ctx context.Context,
	op string,
	action entity.AuditAction,
	in dto.StockQuantityRequest,
	apply func(ctx context.Context, stockID, quantity int64) (*entity.Stock, error),
) (*dto.StockResponse, error) {
	if err := validateQuantity(in); err != nil {
		return nil, err
	}
	updated, err := apply(ctx, in.StockID, in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInsufficientStock) ||
			errors.Is(err, domain.ErrInvalidInput) {
			uc.observe(op, OutcomeRejected)
		} else {
			uc.observe(op, OutcomeError)
		}
		return nil, err
	}
	uc.observe(op, OutcomeOK)

	shopID := updated.ShopID
	uc.audit.Notify(ctx, entity.AuditEvent{
		Action:    action,
		ProductID: updated.ProductID,
		ShopID:    &shopID,
		Details:   map[string]any{"quantity": in.Quantity},
	})
	return toStockResponse(updated), nil
}

// Find consulta stock con filtros. Sin filtros devuelve ErrNoFilters; sin coincidencias, lista vacía.
func (uc *StockUseCase) Find(ctx context.Context, filters repository.Filters) ([]dto.StockViewResponse, error) {
	if !filters.HasAny(repository.StockFilterKeys...) {
		return nil, domain.ErrNoFilters
	}
	list, err := uc.repo.Find(ctx, filters)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockViewResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.StockViewResponse{
			StockResponse: *toStockResponse(&v.Stock),
			PLU:           v.PLU,
			Name:          v.Name,
			ShopName:      v.ShopName,
		})
	}
	return out, nil
}

func (uc *StockUseCase) observe(op, outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveStockMutation(op, outcome)
	}
}

// validateQuantity exige stock_id y una cantidad positiva. Una cantidad negativa permitiría
// que increase dejara on_shelf por debajo de cero.
func validateQuantity(in dto.StockQuantityRequest) error {
	if in.StockID <= 0 || in.Quantity == 0 {
		return fmt.Errorf("%w: stock_id y quantity son requeridos", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity debe ser positivo", domain.ErrInvalidInput)
	}
	if in.Quantity > maxQuantity {
		return fmt.Errorf("%w: quantity no puede superar %d", domain.ErrInvalidInput, maxQuantity)
	}
	return nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		ShopID:    s.ShopID,
		OnShelf:   s.OnShelf,
		InOrder:   s.InOrder,
	}
}
