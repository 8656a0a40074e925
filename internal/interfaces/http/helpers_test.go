package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-service/internal/application/ports"
	"github.com/jhoicas/stock-service/internal/application/usecase"
	"github.com/jhoicas/stock-service/internal/domain"
	"github.com/jhoicas/stock-service/internal/domain/entity"
	"github.com/jhoicas/stock-service/internal/domain/repository"
	apphttp "github.com/jhoicas/stock-service/internal/interfaces/http"
	"github.com/jhoicas/stock-service/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	mu       sync.Mutex
	products []*entity.Product
	shops    map[int64]string
	stock    []*entity.Stock
	failWith error // si no es nil, toda operación falla como error de almacenamiento

	queries int
}

func newStore() *store {
	return &store{shops: map[int64]string{1: "Centro", 2: "Norte"}}
}

type productRepo struct{ s *store }

func (r productRepo) Create(_ context.Context, plu, name string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	p := &entity.Product{ID: int64(len(r.s.products) + 1), PLU: plu, Name: name}
	r.s.products = append(r.s.products, p)
	out := *p
	return &out, nil
}

func (r productRepo) Find(_ context.Context, f repository.Filters) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	list := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if v, ok := f.Value("plu"); ok && p.PLU != v {
			continue
		}
		if v, ok := f.Value("name"); ok && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(v)) {
			continue
		}
		out := *p
		list = append(list, &out)
	}
	return list, nil
}

type stockRepo struct{ s *store }

func (r stockRepo) Create(_ context.Context, st *entity.Stock) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	row := *st
	row.ID = int64(len(r.s.stock) + 1)
	r.s.stock = append(r.s.stock, &row)
	out := row
	return &out, nil
}

func (r stockRepo) find(id int64) *entity.Stock {
	for _, st := range r.s.stock {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (r stockRepo) Increase(_ context.Context, id, qty int64) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	st := r.find(id)
	if st == nil {
		return nil, domain.ErrNotFound
	}
	st.OnShelf += qty
	out := *st
	return &out, nil
}

func (r stockRepo) Decrease(_ context.Context, id, qty int64) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	st := r.find(id)
	if st == nil || st.OnShelf < qty {
		return nil, domain.ErrInsufficientStock
	}
	st.OnShelf -= qty
	out := *st
	return &out, nil
}

func (r stockRepo) Find(_ context.Context, f repository.Filters) ([]*entity.StockView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	list := make([]*entity.StockView, 0)
	for _, st := range r.s.stock {
		var product *entity.Product
		for _, p := range r.s.products {
			if p.ID == st.ProductID {
				product = p
			}
		}
		if product == nil {
			continue
		}
		if v, ok := f.Value("plu"); ok && product.PLU != v {
			continue
		}
		if v, ok := f.Value("shop_id"); ok && v != itoa(st.ShopID) {
			continue
		}
		list = append(list, &entity.StockView{Stock: *st, PLU: product.PLU, Name: product.Name, ShopName: r.s.shops[st.ShopID]})
	}
	return list, nil
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditoría
// ──────────────────────────────────────────────────────────────────────────────

type auditSpy struct {
	mu     sync.Mutex
	events []entity.AuditEvent
}

func (a *auditSpy) Notify(_ context.Context, e entity.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *auditSpy) all() []entity.AuditEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]entity.AuditEvent(nil), a.events...)
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(s *store, audit ports.AuditNotifier, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	return apphttp.NewApp(apphttp.RouterDeps{
		AppName:   "stock-service-test",
		ProductUC: usecase.NewProductUseCase(productRepo{s}, audit),
		StockUC:   usecase.NewStockUseCase(stockRepo{s}, audit, nil),
		Log:       log,
	})
}

// doJSON lanza una petición con cuerpo JSON (body == "" para ninguno) y devuelve estado y cuerpo.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
