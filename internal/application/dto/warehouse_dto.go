package dto

import "github.com/tu-usuario/pedidos-pro/internal/domain/entity"

// WarehouseDTO una bodega del catálogo del backend.
type WarehouseDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ToEntity convierte la bodega de cable a entidad.
func (d WarehouseDTO) ToEntity() entity.Warehouse {
	return entity.Warehouse{ID: d.ID, Name: d.Name, Location: d.Location}
}
