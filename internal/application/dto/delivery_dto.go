package dto

import (
	"time"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// DeliveryDTO una entrega programada del endpoint paginado de entregas.
type DeliveryDTO struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	InstitutionID string    `json:"institution_id"`
	Address       string    `json:"address"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
}

// ToEntity convierte la entrega de cable a entidad.
func (d DeliveryDTO) ToEntity() entity.Delivery {
	return entity.Delivery{
		ID:            d.ID,
		OrderID:       d.OrderID,
		InstitutionID: d.InstitutionID,
		Address:       d.Address,
		ScheduledDate: d.ScheduledDate,
		Status:        d.Status,
		Notes:         d.Notes,
	}
}
