package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	domaininv "github.com/tu-usuario/pedidos-pro/internal/domain/inventory"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
)

// StockLookupUseCase consulta el stock de un producto: trae los lotes por SKU
// y el catálogo de bodegas, y los reconcilia con el agregador de dominio.
// El resultado se recalcula en cada consulta; no se cachea ni se muta.
type StockLookupUseCase struct {
	api InventoryAPI
	log *logger.Logger
}

// NewStockLookupUseCase construye el caso de uso.
func NewStockLookupUseCase(api InventoryAPI, log *logger.Logger) *StockLookupUseCase {
	return &StockLookupUseCase{api: api, log: log.Component("inventory")}
}

// TotalBySKU devuelve el stock agregado por bodega y el total del producto.
// Los errores de transporte se propagan; la agregación en sí nunca falla.
func (uc *StockLookupUseCase) TotalBySKU(ctx context.Context, sku string) (dto.InventoryTotalResponse, error) {
	batches, err := uc.api.InventoryBySKU(ctx, sku)
	if err != nil {
		return dto.InventoryTotalResponse{}, err
	}
	warehouses, err := uc.api.ListWarehouses(ctx)
	if err != nil {
		return dto.InventoryTotalResponse{}, err
	}

	total := domaininv.Aggregate(sku, batches, warehouses)
	uc.log.Debug().Str("sku", sku).Str("total", total.Total.String()).
		Int("bodegas", len(total.Warehouses)).Msg("stock agregado")
	return dto.ToInventoryTotalResponse(total), nil
}

// AvailableStock devuelve el tope de stock vendible del producto, que alimenta
// la validación de tope al componer el carrito.
func (uc *StockLookupUseCase) AvailableStock(ctx context.Context, sku string) (decimal.Decimal, error) {
	out, err := uc.TotalBySKU(ctx, sku)
	if err != nil {
		return decimal.Zero, err
	}
	return out.Total, nil
}
