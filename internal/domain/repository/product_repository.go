package repository

import (
	"context"

	"github.com/jhoicas/stock-service/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, plu, name string) (*entity.Product, error)
	// Find aplica los filtros reconocidos (plu, name). Devuelve slice vacío si no hay coincidencias.
	Find(ctx context.Context, filters Filters) ([]*entity.Product, error)
}
