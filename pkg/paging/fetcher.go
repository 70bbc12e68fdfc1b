// Package paging implementa el recorrido completo de resultados paginados:
// la UI necesita vistas completas ("todas las entregas del día") sobre un
// backend que solo responde por páginas y cuyos metadatos de paginación
// pueden faltar o ser inconsistentes.
package paging

import (
	"context"
	"fmt"
)

// Page una página de resultados tal como la reporta el backend.
// Limit y TotalPages pueden venir en cero (ausentes) o inconsistentes con
// len(Data), y Total incluso negativo; el walker lo tolera.
type Page[T any] struct {
	Data       []T
	Total      int
	Limit      int
	TotalPages int
}

// PageFunc capacidad de obtener una página (1-indexed) de tamaño limit.
type PageFunc[T any] func(ctx context.Context, page, limit int) (Page[T], error)

// AggregateFetchError falla de un recorrido completo: conserva la página en la
// que ocurrió y el error de transporte original. Nunca acompaña datos parciales.
type AggregateFetchError struct {
	Page int
	Err  error
}

func (e *AggregateFetchError) Error() string {
	return fmt.Sprintf("recorrido paginado falló en la página %d: %v", e.Page, e.Err)
}

func (e *AggregateFetchError) Unwrap() error { return e.Err }

// FetchAll recorre todas las páginas secuencialmente y devuelve la
// concatenación completa, o un error sin datos parciales (consistencia sobre
// disponibilidad parcial: un recorte silencioso sería peor que fallar).
//
// Las páginas se piden en orden para que el corte temprano sea determinista y
// para que el fallo de la página k no compita con una petición ya emitida de
// la k+1.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], pageSize int) ([]T, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	first, err := fetch(ctx, 1, pageSize)
	if err != nil {
		return nil, &AggregateFetchError{Page: 1, Err: err}
	}

	effSize := effectivePageSize(first, pageSize)
	totalPages := effectiveTotalPages(first, effSize)

	// Un total negativo es metadato hostil: se trata como desconocido, nunca
	// como capacidad ni como criterio de corte.
	acc := make([]T, 0, max(first.Total, 0))
	acc = append(acc, first.Data...)

	for page := 2; page <= totalPages; page++ {
		// Corte temprano: si el total ya está satisfecho, los metadatos de
		// paginación mienten y seguir pidiendo sería trabajo sin límite.
		if first.Total >= 0 && len(acc) >= first.Total {
			break
		}
		resp, err := fetch(ctx, page, effSize)
		if err != nil {
			return nil, &AggregateFetchError{Page: page, Err: err}
		}
		acc = append(acc, resp.Data...)
	}

	return acc, nil
}

// DefaultPageSize tamaño de página cuando el caller no especifica uno.
const DefaultPageSize = 20

// effectivePageSize cadena de fallbacks, evaluada de arriba hacia abajo:
// limit reportado -> len(data) de la primera página -> tamaño solicitado.
func effectivePageSize[T any](first Page[T], requested int) int {
	if first.Limit > 0 {
		return first.Limit
	}
	if len(first.Data) > 0 {
		return len(first.Data)
	}
	return requested
}

// effectiveTotalPages cadena de fallbacks: totalPages reportado ->
// ceil(total/pageSize) -> 1.
func effectiveTotalPages[T any](first Page[T], pageSize int) int {
	if first.TotalPages > 0 {
		return first.TotalPages
	}
	if first.Total > 0 && pageSize > 0 {
		return (first.Total + pageSize - 1) / pageSize
	}
	return 1
}
