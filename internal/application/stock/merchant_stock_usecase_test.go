package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/stock"
	"github.com/jhoicas/storefront-api/internal/domain"
)

const (
	testMerchantID  = "00000000-0000-0000-0000-00000000000a"
	testMerchant2ID = "00000000-0000-0000-0000-00000000000b"
	testProductID   = "00000000-0000-0000-0000-000000000001"
	testWarehouseID = "00000000-0000-0000-0000-0000000000f1"
	testWarehouse2  = "00000000-0000-0000-0000-0000000000f2"
)

type stockFixture struct {
	ms    *fakeMerchantStockRepo
	ws    *fakeWarehouseStockRepo
	cache *fakeCache
	uc    *stock.MerchantStockUseCase
	wuc   *stock.WarehouseStockUseCase
	agg   *stock.AggregateUseCase
}

func newStockFixture() *stockFixture {
	ms := newFakeMerchantStockRepo()
	ws := newFakeWarehouseStockRepo()
	runner := &fakeTxRunner{ms: ms, ws: ws}
	cache := newFakeCache()
	merchants := &fakeMerchantRepo{ids: map[string]bool{testMerchantID: true, testMerchant2ID: true}}
	products := &fakeProductRepo{ids: map[string]bool{testProductID: true}}
	warehouses := &fakeWarehouseRepo{ids: map[string]bool{testWarehouseID: true, testWarehouse2: true}}
	return &stockFixture{
		ms:    ms,
		ws:    ws,
		cache: cache,
		uc:    stock.NewMerchantStockUseCase(runner, ms, merchants, products, warehouses, cache),
		wuc:   stock.NewWarehouseStockUseCase(runner, ws, warehouses, products, cache),
		agg:   stock.NewAggregateUseCase(ms, ws, products, cache),
	}
}

func attachReq(stockN int) dto.AttachMerchantProductRequest {
	return dto.AttachMerchantProductRequest{
		ProductID:   testProductID,
		Stock:       stockN,
		WarehouseID: testWarehouseID,
	}
}

func TestAttach_CreaFilaPivote(t *testing.T) {
	f := newStockFixture()

	out, err := f.uc.Attach(context.Background(), testMerchantID, attachReq(50))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 50, out.Stock)
	assert.Equal(t, testWarehouseID, out.WarehouseID)

	total, err := f.agg.TotalMerchantStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), total)
}

func TestAttach_ParYaAsignado_RetornaDuplicate(t *testing.T) {
	f := newStockFixture()

	_, err := f.uc.Attach(context.Background(), testMerchantID, attachReq(50))
	require.NoError(t, err)

	// Re-asignar no es upsert: se rechaza y el stock original queda intacto.
	_, err = f.uc.Attach(context.Background(), testMerchantID, attachReq(99))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	row, err := f.ms.Get(testMerchantID, testProductID)
	require.NoError(t, err)
	assert.Equal(t, 50, row.Stock, "el stock no debe cambiar tras un attach duplicado")
}

func TestAttach_StockNegativo_RetornaInvalidInput(t *testing.T) {
	f := newStockFixture()

	_, err := f.uc.Attach(context.Background(), testMerchantID, attachReq(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAttach_MerchantInexistente_RetornaNotFound(t *testing.T) {
	f := newStockFixture()

	_, err := f.uc.Attach(context.Background(), "no-existe", attachReq(10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttach_StockCero_EsValido(t *testing.T) {
	f := newStockFixture()

	out, err := f.uc.Attach(context.Background(), testMerchantID, attachReq(0))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)
}

func TestUpdateStock_SobreescribeNoSuma(t *testing.T) {
	f := newStockFixture()

	_, err := f.uc.Attach(context.Background(), testMerchantID, attachReq(50))
	require.NoError(t, err)

	// 50 -> 30: reemplazo total, no delta (el total queda en 30, no en 80).
	out, err := f.uc.UpdateStock(context.Background(), testMerchantID, testProductID, dto.UpdateMerchantStockRequest{
		Stock:       30,
		WarehouseID: testWarehouse2,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, out.Stock)
	assert.Equal(t, testWarehouse2, out.WarehouseID, "la bodega surtidora también se reemplaza")

	total, err := f.agg.TotalMerchantStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)
}

func TestUpdateStock_ParNoAsignado_RetornaNotFound(t *testing.T) {
	f := newStockFixture()

	_, err := f.uc.UpdateStock(context.Background(), testMerchantID, testProductID, dto.UpdateMerchantStockRequest{
		Stock:       10,
		WarehouseID: testWarehouseID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetach_EliminaYEsIdempotente(t *testing.T) {
	f := newStockFixture()

	_, err := f.uc.Attach(context.Background(), testMerchantID, attachReq(50))
	require.NoError(t, err)

	require.NoError(t, f.uc.Detach(context.Background(), testMerchantID, testProductID))

	row, err := f.ms.Get(testMerchantID, testProductID)
	require.NoError(t, err)
	assert.Nil(t, row)

	// Repetir el detach no es error.
	assert.NoError(t, f.uc.Detach(context.Background(), testMerchantID, testProductID))
}

// Ciclo completo del libro: asignar 50, actualizar a 30, retirar.
// El agregado refleja cada paso y termina en cero.
func TestCicloAsignarActualizarRetirar(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()

	_, err := f.uc.Attach(ctx, testMerchantID, attachReq(50))
	require.NoError(t, err)
	total, _ := f.agg.TotalMerchantStock(ctx, testProductID)
	assert.Equal(t, int64(50), total)

	_, err = f.uc.UpdateStock(ctx, testMerchantID, testProductID, dto.UpdateMerchantStockRequest{Stock: 30, WarehouseID: testWarehouseID})
	require.NoError(t, err)
	total, _ = f.agg.TotalMerchantStock(ctx, testProductID)
	assert.Equal(t, int64(30), total)

	require.NoError(t, f.uc.Detach(ctx, testMerchantID, testProductID))
	total, _ = f.agg.TotalMerchantStock(ctx, testProductID)
	assert.Equal(t, int64(0), total, "sin asignaciones el total es 0, no error")
}

func TestMutaciones_InvalidanCache(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()

	_, err := f.uc.Attach(ctx, testMerchantID, attachReq(50))
	require.NoError(t, err)
	assert.Contains(t, f.cache.invalidated, testProductID)

	// Poblar el caché y verificar que el update lo descarta.
	_, err = f.agg.TotalMerchantStock(ctx, testProductID)
	require.NoError(t, err)
	require.Equal(t, 1, f.cache.sets)

	_, err = f.uc.UpdateStock(ctx, testMerchantID, testProductID, dto.UpdateMerchantStockRequest{Stock: 10, WarehouseID: testWarehouseID})
	require.NoError(t, err)
	_, ok := f.cache.entries[testProductID]
	assert.False(t, ok, "la mutación debe invalidar la entrada del producto")
}

func TestWarehouseAttachUpdateDetach(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()

	_, err := f.wuc.Attach(ctx, testWarehouseID, dto.AttachWarehouseProductRequest{ProductID: testProductID, Stock: 120})
	require.NoError(t, err)

	_, err = f.wuc.Attach(ctx, testWarehouseID, dto.AttachWarehouseProductRequest{ProductID: testProductID, Stock: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := f.wuc.UpdateStock(ctx, testWarehouseID, testProductID, dto.UpdateWarehouseStockRequest{Stock: 80})
	require.NoError(t, err)
	assert.Equal(t, 80, out.Stock)

	total, err := f.agg.TotalWarehouseStock(ctx, testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(80), total)

	require.NoError(t, f.wuc.Detach(ctx, testWarehouseID, testProductID))
	assert.NoError(t, f.wuc.Detach(ctx, testWarehouseID, testProductID), "detach idempotente")
}

func TestWarehouseUpdateStock_ParNoAsignado_RetornaNotFound(t *testing.T) {
	f := newStockFixture()

	_, err := f.wuc.UpdateStock(context.Background(), testWarehouseID, testProductID, dto.UpdateWarehouseStockRequest{Stock: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
