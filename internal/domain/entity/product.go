package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo institucional.
// El SKU puede contener espacios y puntuación; debe URL-encodearse en consultas.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	TaxRate     decimal.Decimal // IVA Colombia: 0, 0.05 (5%), 0.19 (19%)
	UnitMeasure string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
