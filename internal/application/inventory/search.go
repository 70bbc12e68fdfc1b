package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// normalizeForSearch baja a minúsculas y remueve diacríticos, para que
// "bodega medellín" y "BODEGA MEDELLIN" coincidan.
func normalizeForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// FilterWarehouses devuelve las bodegas cuyo nombre o ubicación contienen la
// consulta, ignorando mayúsculas y acentos. Consulta vacía devuelve todo.
func FilterWarehouses(warehouses []entity.Warehouse, query string) []entity.Warehouse {
	needle := normalizeForSearch(strings.TrimSpace(query))
	if needle == "" {
		return warehouses
	}
	out := make([]entity.Warehouse, 0, len(warehouses))
	for _, w := range warehouses {
		if strings.Contains(normalizeForSearch(w.Name), needle) ||
			strings.Contains(normalizeForSearch(w.Location), needle) {
			out = append(out, w)
		}
	}
	return out
}
