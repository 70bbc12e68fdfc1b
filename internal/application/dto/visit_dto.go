package dto

import "time"

// VisitResponse visita creada, con id asignado por el servidor.
type VisitResponse struct {
	ID            string    `json:"id"`
	InstitutionID string    `json:"institution_id"`
	Purpose       string    `json:"purpose"`
	VisitedAt     time.Time `json:"visited_at"`
	Attachments   int       `json:"attachments"`
	CreatedAt     time.Time `json:"created_at"`
}
