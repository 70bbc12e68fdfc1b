package api

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// InventoryBySKU obtiene los lotes de inventario de un producto. El SKU puede
// contener espacios y puntuación, por eso viaja como path param escapado.
func (c *Client) InventoryBySKU(ctx context.Context, sku string) ([]entity.InventoryBatch, error) {
	var rows []dto.InventoryBatchDTO
	req := c.http.R().
		SetContext(ctx).
		SetPathParam("sku", sku).
		SetResult(&rows)

	resp, err := req.Get("/api/inventory/{sku}/batches")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, httpErrorFromResponse(resp)
	}

	batches := make([]entity.InventoryBatch, 0, len(rows))
	for _, r := range rows {
		batches = append(batches, r.ToEntity())
	}
	c.log.Debug().Str("sku", sku).Int("lotes", len(batches)).Msg("lotes de inventario recibidos")
	return batches, nil
}

// ListWarehouses obtiene el catálogo completo de bodegas.
func (c *Client) ListWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	var rows []dto.WarehouseDTO
	if err := c.doGet(ctx, "/api/warehouses", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Warehouse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEntity())
	}
	return out, nil
}
