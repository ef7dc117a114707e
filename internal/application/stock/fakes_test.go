package stock_test

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/application/stock"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// Fakes en memoria para los tests del libro de stock. El runner de transacciones
// trabaja sobre copias y solo publica los cambios si el callback no devolvió error,
// imitando el commit/rollback real.

func pairKey(a, b string) string { return a + "|" + b }

type fakeMerchantStockRepo struct {
	rows map[string]*entity.MerchantStock
}

func newFakeMerchantStockRepo() *fakeMerchantStockRepo {
	return &fakeMerchantStockRepo{rows: make(map[string]*entity.MerchantStock)}
}

func (f *fakeMerchantStockRepo) clone() *fakeMerchantStockRepo {
	c := newFakeMerchantStockRepo()
	for k, v := range f.rows {
		cp := *v
		c.rows[k] = &cp
	}
	return c
}

func (f *fakeMerchantStockRepo) Get(merchantID, productID string) (*entity.MerchantStock, error) {
	if row, ok := f.rows[pairKey(merchantID, productID)]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeMerchantStockRepo) GetForUpdate(merchantID, productID string) (*entity.MerchantStock, error) {
	return f.Get(merchantID, productID)
}

func (f *fakeMerchantStockRepo) Create(s *entity.MerchantStock) error {
	key := pairKey(s.MerchantID, s.ProductID)
	if _, ok := f.rows[key]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	f.rows[key] = &cp
	return nil
}

func (f *fakeMerchantStockRepo) UpdateStock(merchantID, productID string, stock int, warehouseID string) error {
	row, ok := f.rows[pairKey(merchantID, productID)]
	if !ok {
		return domain.ErrNotFound
	}
	row.Stock = stock
	row.WarehouseID = warehouseID
	return nil
}

func (f *fakeMerchantStockRepo) Delete(merchantID, productID string) error {
	delete(f.rows, pairKey(merchantID, productID))
	return nil
}

func (f *fakeMerchantStockRepo) ListByMerchant(merchantID string, limit, offset int) ([]*entity.MerchantStock, error) {
	var out []*entity.MerchantStock
	for _, row := range f.rows {
		if row.MerchantID == merchantID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMerchantStockRepo) ListByProduct(productID string) ([]*entity.MerchantStock, error) {
	var out []*entity.MerchantStock
	for _, row := range f.rows {
		if row.ProductID == productID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMerchantStockRepo) TotalByProduct(productID string) (int64, error) {
	var total int64
	for _, row := range f.rows {
		if row.ProductID == productID {
			total += int64(row.Stock)
		}
	}
	return total, nil
}

type fakeWarehouseStockRepo struct {
	rows map[string]*entity.WarehouseStock
}

func newFakeWarehouseStockRepo() *fakeWarehouseStockRepo {
	return &fakeWarehouseStockRepo{rows: make(map[string]*entity.WarehouseStock)}
}

func (f *fakeWarehouseStockRepo) clone() *fakeWarehouseStockRepo {
	c := newFakeWarehouseStockRepo()
	for k, v := range f.rows {
		cp := *v
		c.rows[k] = &cp
	}
	return c
}

func (f *fakeWarehouseStockRepo) Get(warehouseID, productID string) (*entity.WarehouseStock, error) {
	if row, ok := f.rows[pairKey(warehouseID, productID)]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeWarehouseStockRepo) GetForUpdate(warehouseID, productID string) (*entity.WarehouseStock, error) {
	return f.Get(warehouseID, productID)
}

func (f *fakeWarehouseStockRepo) Create(s *entity.WarehouseStock) error {
	key := pairKey(s.WarehouseID, s.ProductID)
	if _, ok := f.rows[key]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	f.rows[key] = &cp
	return nil
}

func (f *fakeWarehouseStockRepo) UpdateStock(warehouseID, productID string, stock int) error {
	row, ok := f.rows[pairKey(warehouseID, productID)]
	if !ok {
		return domain.ErrNotFound
	}
	row.Stock = stock
	return nil
}

func (f *fakeWarehouseStockRepo) Delete(warehouseID, productID string) error {
	delete(f.rows, pairKey(warehouseID, productID))
	return nil
}

func (f *fakeWarehouseStockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.WarehouseStock, error) {
	var out []*entity.WarehouseStock
	for _, row := range f.rows {
		if row.WarehouseID == warehouseID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeWarehouseStockRepo) ListByProduct(productID string) ([]*entity.WarehouseStock, error) {
	var out []*entity.WarehouseStock
	for _, row := range f.rows {
		if row.ProductID == productID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeWarehouseStockRepo) TotalByProduct(productID string) (int64, error) {
	var total int64
	for _, row := range f.rows {
		if row.ProductID == productID {
			total += int64(row.Stock)
		}
	}
	return total, nil
}

// fakeTxRunner ejecuta el callback sobre clones y publica los cambios solo en éxito.
type fakeTxRunner struct {
	ms *fakeMerchantStockRepo
	ws *fakeWarehouseStockRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	msRepo repository.MerchantStockRepository,
	wsRepo repository.WarehouseStockRepository,
) error) error {
	msClone := r.ms.clone()
	wsClone := r.ws.clone()
	if err := fn(msClone, wsClone); err != nil {
		return err
	}
	r.ms.rows = msClone.rows
	r.ws.rows = wsClone.rows
	return nil
}

// Fakes de catálogo: solo registran qué IDs existen.

type fakeMerchantRepo struct{ ids map[string]bool }

func (f *fakeMerchantRepo) Create(*entity.Merchant) error { return nil }
func (f *fakeMerchantRepo) GetByID(id string) (*entity.Merchant, error) {
	if f.ids[id] {
		return &entity.Merchant{ID: id}, nil
	}
	return nil, nil
}
func (f *fakeMerchantRepo) Update(*entity.Merchant) error                    { return nil }
func (f *fakeMerchantRepo) List(int, int) ([]*entity.Merchant, error)        { return nil, nil }
func (f *fakeMerchantRepo) Delete(string) error                              { return nil }

type fakeProductRepo struct{ ids map[string]bool }

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if f.ids[id] {
		return &entity.Product{ID: id}, nil
	}
	return nil, nil
}
func (f *fakeProductRepo) GetBySlug(string) (*entity.Product, error)                  { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                               { return nil }
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)                   { return nil, nil }
func (f *fakeProductRepo) ListByCategory(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(string) error                                        { return nil }

type fakeWarehouseRepo struct{ ids map[string]bool }

func (f *fakeWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if f.ids[id] {
		return &entity.Warehouse{ID: id}, nil
	}
	return nil, nil
}
func (f *fakeWarehouseRepo) Update(*entity.Warehouse) error             { return nil }
func (f *fakeWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }
func (f *fakeWarehouseRepo) Delete(string) error                        { return nil }

// fakeCache registra aciertos, escrituras e invalidaciones.
type fakeCache struct {
	entries     map[string]stock.Totals
	hits        int
	sets        int
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]stock.Totals)}
}

func (c *fakeCache) GetTotals(_ context.Context, productID string) (*stock.Totals, bool, error) {
	if totals, ok := c.entries[productID]; ok {
		c.hits++
		return &totals, true, nil
	}
	return nil, false, nil
}

func (c *fakeCache) SetTotals(_ context.Context, productID string, totals stock.Totals) error {
	c.sets++
	c.entries[productID] = totals
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, productID string) error {
	c.invalidated = append(c.invalidated, productID)
	delete(c.entries, productID)
	return nil
}
