package repository

import "strings"

// Claves de filtrado reconocidas en las consultas de stock y productos.
const (
	FilterPLU        = "plu"
	FilterName       = "name"
	FilterShopID     = "shop_id"
	FilterOnShelfMin = "on_shelf_min"
	FilterOnShelfMax = "on_shelf_max"
	FilterInOrderMin = "in_order_min"
	FilterInOrderMax = "in_order_max"
)

var (
	StockFilterKeys   = []string{FilterPLU, FilterShopID, FilterOnShelfMin, FilterOnShelfMax, FilterInOrderMin, FilterInOrderMax}
	ProductFilterKeys = []string{FilterPLU, FilterName}
)

// Filters parámetros de filtrado tal como llegan en la query string (clave -> valor).
// Las claves no reconocidas y los valores vacíos se ignoran.
type Filters map[string]string

// Value devuelve el valor tal como llegó y si cuenta como presente.
// Un valor formado solo por espacios no cuenta como filtro.
func (f Filters) Value(key string) (string, bool) {
	v := f[key]
	return v, strings.TrimSpace(v) != ""
}

// HasAny indica si al menos una de las claves tiene valor.
func (f Filters) HasAny(keys ...string) bool {
	for _, k := range keys {
		if _, ok := f.Value(k); ok {
			return true
		}
	}
	return false
}
