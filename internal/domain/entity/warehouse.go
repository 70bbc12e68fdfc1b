package entity

// Warehouse representa una bodega donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID       string
	Name     string
	Location string
}

// Nombres sustitutos cuando el backend no conoce una bodega referenciada
// por un lote. Un fallo de lookup nunca es fatal.
const (
	UnknownWarehouseName     = "Bodega desconocida"
	UnknownWarehouseLocation = "Ubicación desconocida"
)

// WarehouseRef es la referencia a una bodega resuelta contra el catálogo:
// conocida (Meta != nil) o desconocida. El variant explícito evita que un
// placeholder se confunda con datos reales.
type WarehouseRef struct {
	Meta *Warehouse // nil si la bodega no aparece en el catálogo
	ID   string     // warehouseId observado en los lotes, siempre presente
}

// Known indica si la bodega fue resuelta contra el catálogo.
func (r WarehouseRef) Known() bool { return r.Meta != nil }

// DisplayName devuelve el nombre de la bodega o el placeholder.
func (r WarehouseRef) DisplayName() string {
	if r.Meta != nil {
		return r.Meta.Name
	}
	return UnknownWarehouseName
}

// DisplayLocation devuelve la ubicación de la bodega o el placeholder.
func (r WarehouseRef) DisplayLocation() string {
	if r.Meta != nil {
		return r.Meta.Location
	}
	return UnknownWarehouseLocation
}
