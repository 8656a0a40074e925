package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/stock-service/internal/domain"
	"github.com/jhoicas/stock-service/internal/domain/repository"
)

// filterField declara un filtro opcional: clave de query string, columna, operador y
// conversión del valor antes de enlazarlo como parámetro posicional.
type filterField struct {
	key    string
	column string
	op     string
	bind   func(raw string) (any, error)
}

// El orden de las declaraciones fija el orden de cláusulas y de parámetros.
var stockFilterFields = []filterField{
	{key: repository.FilterPLU, column: "p.plu", op: "=", bind: bindText},
	{key: repository.FilterShopID, column: "s.shop_id", op: "=", bind: bindInt},
	{key: repository.FilterOnShelfMin, column: "s.on_shelf", op: ">=", bind: bindInt},
	{key: repository.FilterOnShelfMax, column: "s.on_shelf", op: "<=", bind: bindInt},
	{key: repository.FilterInOrderMin, column: "s.in_order", op: ">=", bind: bindInt},
	{key: repository.FilterInOrderMax, column: "s.in_order", op: "<=", bind: bindInt},
}

var productFilterFields = []filterField{
	{key: repository.FilterPLU, column: "plu", op: "=", bind: bindText},
	{key: repository.FilterName, column: "name", op: "ILIKE", bind: bindContains},
}

// buildWhere arma " AND col op $n ..." y la lista de argumentos. El índice del placeholder
// es siempre len(args) tras el append, así cláusula y parámetro no pueden desfasarse.
// Sin ningún filtro presente devuelve domain.ErrNoFilters; un valor que no convierte,
// domain.ErrInvalidInput. En ambos casos no se toca la base de datos.
func buildWhere(fields []filterField, filters repository.Filters) (string, []any, error) {
	var sb strings.Builder
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		raw, ok := filters.Value(f.key)
		if !ok {
			continue
		}
		v, err := f.bind(raw)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, f.key, err)
		}
		args = append(args, v)
		fmt.Fprintf(&sb, " AND %s %s $%d", f.column, f.op, len(args))
	}
	if len(args) == 0 {
		return "", nil, domain.ErrNoFilters
	}
	return sb.String(), args, nil
}

func bindText(raw string) (any, error) {
	return raw, nil
}

func bindInt(raw string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("se esperaba un entero, se recibió %q", raw)
	}
	return n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// bindContains envuelve el valor con comodines para búsqueda por subcadena.
// Los comodines del propio valor se escapan para que se comparen literalmente.
func bindContains(raw string) (any, error) {
	return "%" + likeEscaper.Replace(raw) + "%", nil
}
