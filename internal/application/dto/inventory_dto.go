package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// InventoryBatchDTO una fila de lote del endpoint de inventario por SKU.
type InventoryBatchDTO struct {
	WarehouseID string          `json:"warehouse_id"`
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ToEntity convierte la fila de cable a entidad de dominio.
func (d InventoryBatchDTO) ToEntity() entity.InventoryBatch {
	return entity.InventoryBatch{
		WarehouseID: d.WarehouseID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
	}
}

// WarehouseStockSummaryResponse stock agregado por bodega para la UI.
type WarehouseStockSummaryResponse struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Location      string          `json:"location"`
	Known         bool            `json:"known"`
	Stock         decimal.Decimal `json:"stock"`
	Available     decimal.Decimal `json:"available"`
}

// InventoryTotalResponse stock total de un producto a través de bodegas.
type InventoryTotalResponse struct {
	ProductID  string                          `json:"product_id"`
	Total      decimal.Decimal                 `json:"total_stock"`
	Warehouses []WarehouseStockSummaryResponse `json:"warehouses"`
}

// ToInventoryTotalResponse arma la respuesta de agregación para la UI.
func ToInventoryTotalResponse(t entity.InventoryTotal) InventoryTotalResponse {
	out := InventoryTotalResponse{
		ProductID:  t.ProductID,
		Total:      t.Total,
		Warehouses: make([]WarehouseStockSummaryResponse, 0, len(t.Warehouses)),
	}
	for _, w := range t.Warehouses {
		out.Warehouses = append(out.Warehouses, WarehouseStockSummaryResponse{
			WarehouseID:   w.Warehouse.ID,
			WarehouseName: w.Warehouse.DisplayName(),
			Location:      w.Warehouse.DisplayLocation(),
			Known:         w.Warehouse.Known(),
			Stock:         w.Stock,
			Available:     w.Available,
		})
	}
	return out
}
