package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-service/internal/application/dto"
	"github.com/jhoicas/stock-service/internal/application/ports"
	"github.com/jhoicas/stock-service/internal/domain"
	"github.com/jhoicas/stock-service/internal/domain/entity"
	"github.com/jhoicas/stock-service/internal/domain/repository"
)

// ProductUseCase alta y consulta filtrada de productos.
type ProductUseCase struct {
	repo  repository.ProductRepository
	audit ports.AuditNotifier
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, audit ports.AuditNotifier) *ProductUseCase {
	return &ProductUseCase{repo: repo, audit: audit}
}

// Create crea un producto y notifica CREATE_PRODUCT al historial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.PLU) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: plu y name son requeridos", domain.ErrInvalidInput)
	}
	product, err := uc.repo.Create(ctx, in.PLU, in.Name)
	if err != nil {
		return nil, err
	}
	uc.audit.Notify(ctx, entity.AuditEvent{
		Action:    entity.ActionCreateProduct,
		ProductID: product.ID,
		Details:   map[string]any{"name": product.Name},
	})
	return toProductResponse(product), nil
}

// Find busca productos por plu y/o name. Sin filtros devuelve ErrNoFilters;
// sin coincidencias devuelve ErrNotFound (a diferencia de la consulta de stock).
func (uc *ProductUseCase) Find(ctx context.Context, filters repository.Filters) ([]dto.ProductResponse, error) {
	if !filters.HasAny(repository.ProductFilterKeys...) {
		return nil, domain.ErrNoFilters
	}
	list, err := uc.repo.Find(ctx, filters)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:   p.ID,
		PLU:  p.PLU,
		Name: p.Name,
	}
}
