package retail_test

import (
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/domain/repository"
)

// ── Dobles de prueba en memoria ──────────────────────────────────────────────

type fakeParser struct {
	rows []entity.RetailSheetRow
	err  error
}

func (p *fakeParser) Parse(_ io.Reader) ([]entity.RetailSheetRow, error) {
	return p.rows, p.err
}

type fakeWriter struct {
	path  string
	rows  []entity.RetailFixtureRow
	err   error
	calls int
}

func (w *fakeWriter) Write(out io.Writer, rows []entity.RetailFixtureRow) error {
	w.calls++
	w.rows = rows
	if w.err != nil {
		return w.err
	}
	_, err := out.Write([]byte("xlsx"))
	return err
}

func (w *fakeWriter) WriteFile(path string, rows []entity.RetailFixtureRow) error {
	w.calls++
	w.path = path
	w.rows = rows
	return w.err
}

type fakeProductRepo struct {
	bySKU map[string]*entity.Product
	err   error
}

func (r *fakeProductRepo) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.bySKU[companyID+"/"+sku]
	if !ok {
		return nil, nil
	}
	return p, nil
}

type fakeRetailRepo struct {
	items   []*entity.Retail
	saveErr error
	lastF   repository.RetailFilter
}

func (r *fakeRetailRepo) SaveAll(_ context.Context, retails []*entity.Retail) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.items = append(r.items, retails...)
	return nil
}

func (r *fakeRetailRepo) ListByCompanyAndSoldDate(_ context.Context, companyID string, soldDate time.Time) ([]*entity.Retail, error) {
	var out []*entity.Retail
	for _, it := range r.items {
		if it.CompanyID == companyID && sameDay(it.SoldDate, soldDate) && !it.IsDeleted() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRetailRepo) SoftDeleteByCompanyAndSoldDate(ctx context.Context, companyID string, soldDate, now time.Time) (int64, error) {
	existing, _ := r.ListByCompanyAndSoldDate(ctx, companyID, soldDate)
	for _, it := range existing {
		it.Delete(now)
	}
	return int64(len(existing)), nil
}

func (r *fakeRetailRepo) List(_ context.Context, f repository.RetailFilter) ([]*entity.Retail, int, error) {
	r.lastF = f
	var out []*entity.Retail
	for _, it := range r.items {
		if it.CompanyID != f.CompanyID || it.IsDeleted() {
			continue
		}
		if it.SoldDate.Before(f.From) || it.SoldDate.After(f.To) {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SoldDate.After(out[j].SoldDate) })
	return out, len(out), nil
}

func (r *fakeRetailRepo) active() []*entity.Retail {
	var out []*entity.Retail
	for _, it := range r.items {
		if !it.IsDeleted() {
			out = append(out, it)
		}
	}
	return out
}

type fakeStockRepo struct {
	qty map[string]decimal.Decimal // por product_id; sin clave = sin registro
}

func (r *fakeStockRepo) GetForUpdate(_ context.Context, productID string) (*entity.Stock, error) {
	q, ok := r.qty[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entity.Stock{ProductID: productID, Quantity: q}, nil
}

func (r *fakeStockRepo) Upsert(_ context.Context, s *entity.Stock) error {
	r.qty[s.ProductID] = s.Quantity
	return nil
}

type fakeMovementRepo struct {
	items []*entity.InventoryMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.items = append(r.items, m)
	return nil
}

// fakeTx ejecuta fn sin transacción real; si fn falla descarta lo escrito.
type fakeTx struct {
	products  *fakeProductRepo
	stock     *fakeStockRepo
	movements *fakeMovementRepo
	retails   *fakeRetailRepo
}

func (tx *fakeTx) RunRetail(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockRepository,
	repository.InventoryMovementRepository,
	repository.RetailRepository,
) error) error {
	retails := append([]*entity.Retail(nil), tx.retails.items...)
	deleted := make(map[*entity.Retail]*time.Time, len(retails))
	for _, r := range retails {
		deleted[r] = r.DeletedAt
	}
	stock := make(map[string]decimal.Decimal, len(tx.stock.qty))
	for k, v := range tx.stock.qty {
		stock[k] = v
	}
	movements := append([]*entity.InventoryMovement(nil), tx.movements.items...)

	if err := fn(tx.products, tx.stock, tx.movements, tx.retails); err != nil {
		tx.retails.items = retails
		for r, d := range deleted {
			r.DeletedAt = d
		}
		tx.stock.qty = stock
		tx.movements.items = movements
		return err
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

var errBoom = errors.New("boom")
