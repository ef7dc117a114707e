package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
)

// El total por lado es la suma de todas las ubicaciones de ese lado;
// los dos lados no se mezclan entre sí.
func TestAggregate_SumaPorLado(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()

	_, err := f.uc.Attach(ctx, testMerchantID, attachReq(50))
	require.NoError(t, err)
	_, err = f.uc.Attach(ctx, testMerchant2ID, attachReq(25))
	require.NoError(t, err)
	_, err = f.wuc.Attach(ctx, testWarehouseID, dto.AttachWarehouseProductRequest{ProductID: testProductID, Stock: 200})
	require.NoError(t, err)

	out, err := f.agg.ProductStock(ctx, testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(75), out.MerchantStock)
	assert.Equal(t, int64(200), out.WarehouseStock)
}

func TestAggregate_SinAsignaciones_RetornaCero(t *testing.T) {
	f := newStockFixture()

	out, err := f.agg.ProductStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.MerchantStock)
	assert.Equal(t, int64(0), out.WarehouseStock)
}

func TestAggregate_ProductoInexistente_RetornaNotFound(t *testing.T) {
	f := newStockFixture()

	_, err := f.agg.ProductStock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cache-aside: la primera lectura consulta los repos y escribe el caché;
// la segunda sale del caché sin volver a la BD.
func TestAggregate_CacheAside(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()

	_, err := f.uc.Attach(ctx, testMerchantID, attachReq(40))
	require.NoError(t, err)

	total, err := f.agg.TotalMerchantStock(ctx, testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), total)
	assert.Equal(t, 1, f.cache.sets)
	assert.Equal(t, 0, f.cache.hits)

	total, err = f.agg.TotalMerchantStock(ctx, testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), total)
	assert.Equal(t, 1, f.cache.hits, "la segunda lectura debe salir del caché")
	assert.Equal(t, 1, f.cache.sets, "no debe reescribirse una entrada vigente")
}

// Tras invalidar, la lectura vuelve a la BD y refleja el valor nuevo.
func TestAggregate_LecturaTrasInvalidacion(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()

	_, err := f.uc.Attach(ctx, testMerchantID, attachReq(40))
	require.NoError(t, err)

	total, err := f.agg.TotalMerchantStock(ctx, testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), total)

	_, err = f.uc.UpdateStock(ctx, testMerchantID, testProductID, dto.UpdateMerchantStockRequest{Stock: 7, WarehouseID: testWarehouseID})
	require.NoError(t, err)

	total, err = f.agg.TotalMerchantStock(ctx, testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total, "tras la invalidación el caché no debe servir el valor viejo")
}
