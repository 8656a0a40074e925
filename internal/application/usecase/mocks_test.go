package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stock-service/internal/domain"
	"github.com/jhoicas/stock-service/internal/domain/entity"
	"github.com/jhoicas/stock-service/internal/domain/repository"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, plu, name string) (*entity.Product, error) {
	args := m.Called(ctx, plu, name)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Find(ctx context.Context, filters repository.Filters) ([]*entity.Product, error) {
	args := m.Called(ctx, filters)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

type StockRepoMock struct{ mock.Mock }

func (m *StockRepoMock) Create(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	args := m.Called(ctx, stock)
	s, _ := args.Get(0).(*entity.Stock)
	return s, args.Error(1)
}

func (m *StockRepoMock) Increase(ctx context.Context, stockID, quantity int64) (*entity.Stock, error) {
	args := m.Called(ctx, stockID, quantity)
	s, _ := args.Get(0).(*entity.Stock)
	return s, args.Error(1)
}

func (m *StockRepoMock) Decrease(ctx context.Context, stockID, quantity int64) (*entity.Stock, error) {
	args := m.Called(ctx, stockID, quantity)
	s, _ := args.Get(0).(*entity.Stock)
	return s, args.Error(1)
}

func (m *StockRepoMock) Find(ctx context.Context, filters repository.Filters) ([]*entity.StockView, error) {
	args := m.Called(ctx, filters)
	list, _ := args.Get(0).([]*entity.StockView)
	return list, args.Error(1)
}

type AuditMock struct{ mock.Mock }

func (m *AuditMock) Notify(ctx context.Context, event entity.AuditEvent) {
	m.Called(ctx, event)
}

type RecorderMock struct{ mock.Mock }

func (m *RecorderMock) ObserveStockMutation(operation, outcome string) {
	m.Called(operation, outcome)
}

// memStockRepo emula el UPDATE condicionado: cada mutación es atómica bajo el mutex.
type memStockRepo struct {
	mu   sync.Mutex
	rows map[int64]*entity.Stock
	next int64
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{rows: map[int64]*entity.Stock{}}
}

func (r *memStockRepo) Create(_ context.Context, s *entity.Stock) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	row := *s
	row.ID = r.next
	r.rows[row.ID] = &row
	out := row
	return &out, nil
}

func (r *memStockRepo) Increase(_ context.Context, id, qty int64) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	row.OnShelf += qty
	out := *row
	return &out, nil
}

func (r *memStockRepo) Decrease(_ context.Context, id, qty int64) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.OnShelf < qty {
		return nil, domain.ErrInsufficientStock
	}
	row.OnShelf -= qty
	out := *row
	return &out, nil
}

func (r *memStockRepo) Find(context.Context, repository.Filters) ([]*entity.StockView, error) {
	return nil, nil
}

func (r *memStockRepo) onShelf(id int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id].OnShelf
}

type nopAudit struct{}

func (nopAudit) Notify(context.Context, entity.AuditEvent) {}
