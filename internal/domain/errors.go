package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNoFilters    = errors.New("no se indicaron parámetros de filtrado")
	// ErrInsufficientStock cubre también el caso de stock inexistente: el UPDATE
	// condicionado no permite distinguir ambos por el conteo de filas.
	ErrInsufficientStock = errors.New("stock insuficiente o no encontrado")
)
