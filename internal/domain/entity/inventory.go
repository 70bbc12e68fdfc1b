package entity

import "github.com/shopspring/decimal"

// InventoryBatch representa un lote físico de un producto en una bodega.
// Varias filas pueden compartir bodega para el mismo producto; sus cantidades
// se acumulan, nunca se reemplazan.
type InventoryBatch struct {
	WarehouseID string
	ProductID   string
	Quantity    decimal.Decimal
}

// WarehouseStockSummary stock agregado de un producto en una bodega,
// una entrada por cada warehouseId observado en los lotes.
type WarehouseStockSummary struct {
	Warehouse WarehouseRef
	Stock     decimal.Decimal
	Available decimal.Decimal
}

// InventoryTotal stock total de un producto a través de todas las bodegas.
// Invariante: Total == suma de cantidades de lote == suma de Stock por bodega.
type InventoryTotal struct {
	ProductID  string
	Total      decimal.Decimal
	Warehouses []WarehouseStockSummary
}
