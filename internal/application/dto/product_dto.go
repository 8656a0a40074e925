package dto

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	PLU  string `json:"plu" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID   int64  `json:"id"`
	PLU  string `json:"plu"`
	Name string `json:"name"`
}
