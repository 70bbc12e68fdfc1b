package api

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
)

// CreateOrder envía el pedido compuesto. El header Idempotency-Key repite la
// clave del body para que el backend deduplique reintentos.
func (c *Client) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	headers := map[string]string{"Idempotency-Key": req.IdempotencyKey}
	if err := c.doPostJSON(ctx, "/api/orders", headers, req, &out); err != nil {
		return nil, err
	}
	c.log.Info().Str("order_id", out.ID).Str("institucion", req.InstitutionID).Msg("pedido creado")
	return &out, nil
}
