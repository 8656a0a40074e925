package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-service/internal/domain/repository"
)

func TestProductRepo_CreateDevuelveFila(t *testing.T) {
	q := &fakeQuerier{row: []any{int64(1), "A1", "Widget"}}
	repo := NewProductRepository(q)

	p, err := repo.Create(context.Background(), "A1", "Widget")

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "A1", p.PLU)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "INSERT INTO products (plu, name) VALUES ($1, $2) RETURNING id, plu, name", q.sql)
	assert.Equal(t, []any{"A1", "Widget"}, q.args)
}

func TestProductRepo_CreateDuplicado(t *testing.T) {
	repo := NewProductRepository(&fakeQuerier{err: &pgconn.PgError{Code: "23505"}})

	_, err := repo.Create(context.Background(), "A1", "Widget")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicado")
	assert.Equal(t, "23505", ErrorCode(err))
}

func TestProductRepo_FindPorNombre(t *testing.T) {
	q := &fakeQuerier{rows: [][]any{{int64(1), "A1", "Widget"}, {int64(2), "B2", "Mini widget"}}}
	repo := NewProductRepository(q)

	list, err := repo.Find(context.Background(), repository.Filters{"name": "WIDGET", "plu": "A1"})

	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "SELECT id, plu, name FROM products WHERE 1=1 AND plu = $1 AND name ILIKE $2 ORDER BY id", q.sql)
	assert.Equal(t, []any{"A1", "%WIDGET%"}, q.args)
}
