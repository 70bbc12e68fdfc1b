package entity

import "time"

// Attachment archivo adjunto capturado en terreno (foto, documento).
// URI es la ruta local al contenido; el encoder decide JSON vs multipart
// según la presencia de adjuntos.
type Attachment struct {
	URI      string
	Name     string
	MimeType string
}

// Visit representa una visita de campo a un cliente institucional,
// con cero o más adjuntos.
type Visit struct {
	ID            string
	InstitutionID string
	Purpose       string
	Notes         string
	VisitedAt     time.Time
	Attachments   []Attachment
}

// AttachmentData un adjunto ya leído desde su URI, listo para codificar.
type AttachmentData struct {
	Name     string
	MimeType string
	Content  []byte
}
