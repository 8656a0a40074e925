package dto

// CreateStockRequest entrada para crear una fila de stock. OnShelf e InOrder son opcionales (0 por defecto).
type CreateStockRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	ShopID    int64  `json:"shop_id" validate:"required"`
	OnShelf   *int64 `json:"on_shelf"`
	InOrder   *int64 `json:"in_order"`
}

// StockQuantityRequest entrada para aumentar o disminuir on_shelf.
type StockQuantityRequest struct {
	StockID  int64 `json:"stock_id" validate:"required"`
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	ShopID    int64 `json:"shop_id"`
	OnShelf   int64 `json:"on_shelf"`
	InOrder   int64 `json:"in_order"`
}

// StockViewResponse fila de stock con datos del producto y la tienda (GET /stocks).
type StockViewResponse struct {
	StockResponse
	PLU      string `json:"plu"`
	Name     string `json:"name"`
	ShopName string `json:"shop_name"`
}
