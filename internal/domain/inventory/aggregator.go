package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// Aggregate agrupa los lotes de un producto por bodega y resuelve los
// metadatos contra el catálogo de bodegas (servicio de dominio, puro).
//
// Lotes duplicados de la misma bodega se acumulan. Si una bodega no aparece
// en el catálogo se usa la referencia desconocida en lugar de fallar.
// Una lista vacía de lotes es válida y produce total cero.
//
// Invariante: Total == Σ cantidades de lote == Σ Stock por bodega.
func Aggregate(productID string, batches []entity.InventoryBatch, warehouses []entity.Warehouse) entity.InventoryTotal {
	byID := make(map[string]*entity.Warehouse, len(warehouses))
	for i := range warehouses {
		byID[warehouses[i].ID] = &warehouses[i]
	}

	total := decimal.Zero
	perWarehouse := make(map[string]decimal.Decimal)
	order := make([]string, 0) // primer avistamiento de cada bodega

	for _, b := range batches {
		total = total.Add(b.Quantity)
		if _, seen := perWarehouse[b.WarehouseID]; !seen {
			order = append(order, b.WarehouseID)
		}
		perWarehouse[b.WarehouseID] = perWarehouse[b.WarehouseID].Add(b.Quantity)
	}

	summaries := make([]entity.WarehouseStockSummary, 0, len(order))
	for _, id := range order {
		qty := perWarehouse[id]
		summaries = append(summaries, entity.WarehouseStockSummary{
			Warehouse: entity.WarehouseRef{ID: id, Meta: byID[id]},
			Stock:     qty,
			Available: qty,
		})
	}

	return entity.InventoryTotal{
		ProductID:  productID,
		Total:      total,
		Warehouses: summaries,
	}
}
