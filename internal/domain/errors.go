package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSessionExpired    = errors.New("la sesión ha expirado")
)

// StockError indica que una línea del carrito superaría el stock disponible.
// Requested es la cantidad combinada (existente + solicitada) que se rechazó;
// el carrito queda intacto cuando se retorna este error.
type StockError struct {
	ProductID string
	Name      string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solicitado %s, disponible %s",
		e.productLabel(), e.Requested.String(), e.Available.String())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *StockError) Unwrap() error { return ErrInsufficientStock }

func (e *StockError) productLabel() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ProductID
}

// ValidationError es un error de validación local previo a cualquier llamada
// de red; nunca se presenta al usuario como error de transporte.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
