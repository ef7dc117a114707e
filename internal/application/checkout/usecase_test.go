package checkout_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

const (
	merchantID  = "00000000-0000-0000-0000-00000000000a"
	productAID  = "00000000-0000-0000-0000-000000000001"
	productBID  = "00000000-0000-0000-0000-000000000002"
	warehouseID = "00000000-0000-0000-0000-0000000000f1"
)

// Fakes en memoria. El runner trabaja sobre clones y solo publica en éxito,
// imitando el rollback real: una venta fallida no deja descuentos parciales.

type memStockRepo struct {
	rows map[string]*entity.MerchantStock
}

func key(m, p string) string { return m + "|" + p }

func (r *memStockRepo) clone() *memStockRepo {
	c := &memStockRepo{rows: make(map[string]*entity.MerchantStock, len(r.rows))}
	for k, v := range r.rows {
		cp := *v
		c.rows[k] = &cp
	}
	return c
}

func (r *memStockRepo) Get(m, p string) (*entity.MerchantStock, error) {
	if row, ok := r.rows[key(m, p)]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, nil
}

func (r *memStockRepo) GetForUpdate(m, p string) (*entity.MerchantStock, error) { return r.Get(m, p) }

func (r *memStockRepo) Create(s *entity.MerchantStock) error {
	cp := *s
	r.rows[key(s.MerchantID, s.ProductID)] = &cp
	return nil
}

func (r *memStockRepo) UpdateStock(m, p string, stock int, warehouse string) error {
	row, ok := r.rows[key(m, p)]
	if !ok {
		return domain.ErrNotFound
	}
	row.Stock = stock
	row.WarehouseID = warehouse
	return nil
}

func (r *memStockRepo) Delete(m, p string) error { delete(r.rows, key(m, p)); return nil }

func (r *memStockRepo) ListByMerchant(string, int, int) ([]*entity.MerchantStock, error) {
	return nil, nil
}
func (r *memStockRepo) ListByProduct(string) ([]*entity.MerchantStock, error) { return nil, nil }
func (r *memStockRepo) TotalByProduct(string) (int64, error)                  { return 0, nil }

type memTransactionRepo struct {
	created []*entity.Transaction
}

func (r *memTransactionRepo) Create(tx *entity.Transaction) error {
	cp := *tx
	r.created = append(r.created, &cp)
	return nil
}

func (r *memTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, tx := range r.created {
		if tx.ID == id {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTransactionRepo) ListByMerchant(string, int, int) ([]*entity.Transaction, error) {
	return r.created, nil
}
func (r *memTransactionRepo) List(int, int) ([]*entity.Transaction, error) { return r.created, nil }

type memRunner struct {
	stock *memStockRepo
	txs   *memTransactionRepo
}

func (r *memRunner) RunCheckout(_ context.Context, fn func(
	msRepo repository.MerchantStockRepository,
	txRepo repository.TransactionRepository,
) error) error {
	stockClone := r.stock.clone()
	txsClone := &memTransactionRepo{created: append([]*entity.Transaction(nil), r.txs.created...)}
	if err := fn(stockClone, txsClone); err != nil {
		return err
	}
	r.stock.rows = stockClone.rows
	r.txs.created = txsClone.created
	return nil
}

type memMerchantRepo struct{}

func (memMerchantRepo) Create(*entity.Merchant) error { return nil }
func (memMerchantRepo) GetByID(id string) (*entity.Merchant, error) {
	if id == merchantID {
		return &entity.Merchant{ID: id}, nil
	}
	return nil, nil
}
func (memMerchantRepo) Update(*entity.Merchant) error             { return nil }
func (memMerchantRepo) List(int, int) ([]*entity.Merchant, error) { return nil, nil }
func (memMerchantRepo) Delete(string) error                       { return nil }

type memProductRepo struct {
	prices map[string]decimal.Decimal
}

func (r *memProductRepo) Create(*entity.Product) error { return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if price, ok := r.prices[id]; ok {
		return &entity.Product{ID: id, Price: price}, nil
	}
	return nil, nil
}
func (r *memProductRepo) GetBySlug(string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error              { return nil }
func (r *memProductRepo) List(int, int) ([]*entity.Product, error)  { return nil, nil }
func (r *memProductRepo) ListByCategory(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(string) error { return nil }

type fixture struct {
	stock *memStockRepo
	txs   *memTransactionRepo
	uc    *checkout.UseCase
}

func newFixture() *fixture {
	stockRepo := &memStockRepo{rows: make(map[string]*entity.MerchantStock)}
	stockRepo.rows[key(merchantID, productAID)] = &entity.MerchantStock{
		MerchantID: merchantID, ProductID: productAID, Stock: 10, WarehouseID: warehouseID,
	}
	stockRepo.rows[key(merchantID, productBID)] = &entity.MerchantStock{
		MerchantID: merchantID, ProductID: productBID, Stock: 3, WarehouseID: warehouseID,
	}
	txs := &memTransactionRepo{}
	runner := &memRunner{stock: stockRepo, txs: txs}
	products := &memProductRepo{prices: map[string]decimal.Decimal{
		productAID: decimal.NewFromInt(1000),
		productBID: decimal.NewFromInt(250),
	}}
	return &fixture{
		stock: stockRepo,
		txs:   txs,
		uc:    checkout.NewUseCase(runner, memMerchantRepo{}, products, txs, nil),
	}
}

func saleReq(items ...dto.TransactionItemRequest) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		MerchantID: merchantID,
		Name:       "Cliente de mostrador",
		Items:      items,
	}
}

func TestCreate_DescuentaStockYCalculaTotales(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Create(context.Background(), saleReq(
		dto.TransactionItemRequest{ProductID: productAID, Quantity: 2},
		dto.TransactionItemRequest{ProductID: productBID, Quantity: 1},
	))
	require.NoError(t, err)
	require.NotNil(t, out)

	// 2×1000 + 1×250 = 2250; IVA 11% = 247.50; total 2497.50
	assert.True(t, decimal.NewFromInt(2250).Equal(out.SubTotal), "subtotal: %s", out.SubTotal)
	assert.True(t, decimal.RequireFromString("247.50").Equal(out.TaxTotal), "tax: %s", out.TaxTotal)
	assert.True(t, decimal.RequireFromString("2497.50").Equal(out.GrandTotal), "grand: %s", out.GrandTotal)
	assert.Len(t, out.Items, 2)

	rowA, _ := f.stock.Get(merchantID, productAID)
	rowB, _ := f.stock.Get(merchantID, productBID)
	assert.Equal(t, 8, rowA.Stock)
	assert.Equal(t, 2, rowB.Stock)
	assert.Len(t, f.txs.created, 1)
}

func TestCreate_StockInsuficiente_RevierteTodo(t *testing.T) {
	f := newFixture()

	// La primera línea alcanza, la segunda no: la venta entera debe revertirse.
	_, err := f.uc.Create(context.Background(), saleReq(
		dto.TransactionItemRequest{ProductID: productAID, Quantity: 2},
		dto.TransactionItemRequest{ProductID: productBID, Quantity: 5},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	rowA, _ := f.stock.Get(merchantID, productAID)
	rowB, _ := f.stock.Get(merchantID, productBID)
	assert.Equal(t, 10, rowA.Stock, "ninguna línea debe quedar descontada")
	assert.Equal(t, 3, rowB.Stock)
	assert.Empty(t, f.txs.created)
}

func TestCreate_ProductoNoAsignado_RetornaInsufficientStock(t *testing.T) {
	f := newFixture()
	// El producto existe en catálogo pero la tienda no lo tiene asignado.
	f.stock.Delete(merchantID, productBID)

	_, err := f.uc.Create(context.Background(), saleReq(
		dto.TransactionItemRequest{ProductID: productBID, Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCreate_CantidadInvalida_RetornaInvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), saleReq(
		dto.TransactionItemRequest{ProductID: productAID, Quantity: 0},
	))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(context.Background(), dto.CreateTransactionRequest{
		MerchantID: merchantID,
		Name:       "Sin items",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_VentaExacta_DejaStockEnCero(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), saleReq(
		dto.TransactionItemRequest{ProductID: productBID, Quantity: 3},
	))
	require.NoError(t, err)

	row, _ := f.stock.Get(merchantID, productBID)
	assert.Equal(t, 0, row.Stock, "vender todo el stock es válido; quedar en negativo no")
}
