package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pedidos-pro/internal/application/inventory"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
)

type fakeInventoryAPI struct {
	batches    []entity.InventoryBatch
	warehouses []entity.Warehouse
	err        error
}

func (f *fakeInventoryAPI) InventoryBySKU(_ context.Context, _ string) ([]entity.InventoryBatch, error) {
	return f.batches, f.err
}

func (f *fakeInventoryAPI) ListWarehouses(_ context.Context) ([]entity.Warehouse, error) {
	return f.warehouses, f.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// TestTotalBySKU_AgregaYResuelveBodegas lotes de dos bodegas, una desconocida.
func TestTotalBySKU_AgregaYResuelveBodegas(t *testing.T) {
	api := &fakeInventoryAPI{
		batches: []entity.InventoryBatch{
			{WarehouseID: "w1", ProductID: "MED -123", Quantity: decimal.NewFromInt(5)},
			{WarehouseID: "w1", ProductID: "MED -123", Quantity: decimal.NewFromInt(3)},
			{WarehouseID: "w2", ProductID: "MED -123", Quantity: decimal.NewFromInt(4)},
		},
		warehouses: []entity.Warehouse{{ID: "w1", Name: "Bodega Norte", Location: "Bogotá"}},
	}
	uc := inventory.NewStockLookupUseCase(api, testLogger())

	out, err := uc.TotalBySKU(context.Background(), "MED -123")

	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(12)))
	require.Len(t, out.Warehouses, 2)
	assert.Equal(t, "Bodega Norte", out.Warehouses[0].WarehouseName)
	assert.True(t, out.Warehouses[0].Stock.Equal(decimal.NewFromInt(8)))
	assert.False(t, out.Warehouses[1].Known, "w2 no está en el catálogo")
	assert.Equal(t, entity.UnknownWarehouseName, out.Warehouses[1].WarehouseName)
}

// TestTotalBySKU_PropagagErrorDeTransporte un fallo de red es problema del
// caller, no de la agregación.
func TestTotalBySKU_PropagagErrorDeTransporte(t *testing.T) {
	errRed := errors.New("conexión rechazada")
	uc := inventory.NewStockLookupUseCase(&fakeInventoryAPI{err: errRed}, testLogger())

	_, err := uc.TotalBySKU(context.Background(), "p1")

	assert.ErrorIs(t, err, errRed)
}

// TestAvailableStock_DevuelveElTotal el tope del carrito es el total agregado.
func TestAvailableStock_DevuelveElTotal(t *testing.T) {
	api := &fakeInventoryAPI{
		batches: []entity.InventoryBatch{
			{WarehouseID: "w1", ProductID: "p1", Quantity: decimal.NewFromInt(6)},
		},
	}
	uc := inventory.NewStockLookupUseCase(api, testLogger())

	got, err := uc.AvailableStock(context.Background(), "p1")

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(6)))
}

// TestFilterWarehouses_IgnoraAcentosYMayusculas "medellin" encuentra "Medellín".
func TestFilterWarehouses_IgnoraAcentosYMayusculas(t *testing.T) {
	warehouses := []entity.Warehouse{
		{ID: "w1", Name: "Bodega Norte", Location: "Medellín"},
		{ID: "w2", Name: "Bodega Sur", Location: "Cali"},
	}

	got := inventory.FilterWarehouses(warehouses, "MEDELLIN")

	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].ID)

	todo := inventory.FilterWarehouses(warehouses, "  ")
	assert.Len(t, todo, 2, "consulta vacía devuelve el catálogo completo")
}
