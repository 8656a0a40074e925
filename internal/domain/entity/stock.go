package entity

// Stock cantidad de un producto en una tienda.
// OnShelf nunca queda negativo tras una mutación; InOrder no tiene cota inferior.
// El par (ProductID, ShopID) no es único: se permiten filas duplicadas.
type Stock struct {
	ID        int64
	ProductID int64
	ShopID    int64
	OnShelf   int64
	InOrder   int64
}

// StockView fila de stock enriquecida con los datos del producto y la tienda (consulta filtrada).
type StockView struct {
	Stock
	PLU      string
	Name     string
	ShopName string
}
