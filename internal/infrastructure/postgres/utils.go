package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorCode devuelve el SQLSTATE de un error de PostgreSQL, o "" si no lo es.
// Solo se usa para enriquecer logs; los handlers no distinguen subtipos.
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return ErrorCode(err) == "23505"
}

// isOutOfRange verifica si un valor numérico desbordó el tipo de la columna (22003).
func isOutOfRange(err error) bool {
	return ErrorCode(err) == "22003"
}
