package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
)

// OrderAPI capacidad de crear el pedido en el backend.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
}

// StockProvider tope de stock vendible por SKU (agregado multi-bodega).
type StockProvider interface {
	AvailableStock(ctx context.Context, sku string) (decimal.Decimal, error)
}
