package order

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// Cart colección ordenada de líneas, única por ProductID (merge al agregar).
// Vive solo durante la composición del pedido; se descarta al enviar o cancelar.
type Cart struct {
	lines []entity.CartLine
}

// NewCart construye un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// Lines devuelve una copia de las líneas actuales (orden de inserción).
func (c *Cart) Lines() []entity.CartLine {
	out := make([]entity.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len número de líneas del carrito.
func (c *Cart) Len() int { return len(c.lines) }

// AddOrMerge agrega una línea o acumula cantidad sobre la línea existente del
// mismo producto. La cantidad combinada (existente + solicitada) se valida
// contra el tope de stock ANTES de mutar: si lo supera, el carrito queda
// intacto y se retorna *domain.StockError (operación atómica).
func (c *Cart) AddOrMerge(productID, name string, unitPrice, requestedQty, availableStock decimal.Decimal) error {
	if productID == "" || !requestedQty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}

	idx := c.indexOf(productID)
	merged := requestedQty
	if idx >= 0 {
		merged = c.lines[idx].Quantity.Add(requestedQty)
	}
	if merged.GreaterThan(availableStock) {
		return &domain.StockError{
			ProductID: productID,
			Name:      name,
			Requested: merged,
			Available: availableStock,
		}
	}

	if idx >= 0 {
		c.lines[idx].Quantity = merged
		c.lines[idx].Subtotal = merged.Mul(c.lines[idx].UnitPrice)
		return nil
	}
	c.lines = append(c.lines, entity.CartLine{
		ProductID: productID,
		Name:      name,
		Quantity:  requestedQty,
		UnitPrice: unitPrice,
		Subtotal:  requestedQty.Mul(unitPrice),
	})
	return nil
}

// RemoveLine elimina la línea del producto. Idempotente: remover un producto
// ausente es un no-op exitoso, para mantener simples los handlers de UI.
func (c *Cart) RemoveLine(productID string) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}

// Totals calcula subtotal, impuesto, total y unidades del carrito.
func (c *Cart) Totals(taxRate decimal.Decimal) entity.CartTotals {
	subtotal := decimal.Zero
	units := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.Subtotal)
		units = units.Add(l.Quantity)
	}
	tax := subtotal.Mul(taxRate)
	return entity.CartTotals{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
		UnitCount: units,
	}
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
