package entity

import "time"

// Delivery representa una entrega programada para un cliente institucional.
type Delivery struct {
	ID            string
	OrderID       string
	InstitutionID string
	Address       string
	ScheduledDate time.Time
	Status        string // PROGRAMADA, EN_RUTA, ENTREGADA, CANCELADA
	Notes         string
}
