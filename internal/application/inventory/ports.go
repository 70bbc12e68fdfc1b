package inventory

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// InventoryAPI capacidades del backend que consume la consulta de stock.
type InventoryAPI interface {
	InventoryBySKU(ctx context.Context, sku string) ([]entity.InventoryBatch, error)
	ListWarehouses(ctx context.Context) ([]entity.Warehouse, error)
}
