package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO una línea del pedido tal como viaja al backend.
type OrderItemDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreateOrderRequest body para POST /api/orders. IdempotencyKey permite
// reintentar el envío con el mismo cuerpo sin duplicar el pedido.
type CreateOrderRequest struct {
	InstitutionID  string          `json:"institution_id"`
	IdempotencyKey string          `json:"idempotency_key"`
	Items          []OrderItemDTO  `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
}

// OrderResponse pedido creado, con id asignado por el servidor.
type OrderResponse struct {
	ID            string          `json:"id"`
	InstitutionID string          `json:"institution_id"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}
