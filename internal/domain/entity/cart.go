package entity

import "github.com/shopspring/decimal"

// CartLine una línea de producto dentro de un pedido en composición.
// Subtotal siempre se recalcula como Quantity * UnitPrice, nunca se muta aparte.
type CartLine struct {
	ProductID string
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// CartTotals totales calculados de un carrito.
type CartTotals struct {
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	UnitCount decimal.Decimal
}
