package api

import (
	"context"
	"time"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// CreateVisit registra una visita de campo. Los campos escalares van en orden
// de declaración; la variante del cuerpo (JSON o multipart) la decide el
// encoder según los adjuntos, y el cuerpo queda materializado antes del envío
// para que un reintento use bytes idénticos.
func (c *Client) CreateVisit(ctx context.Context, visit entity.Visit, attachments []entity.AttachmentData) (*dto.VisitResponse, error) {
	fields := []Field{
		{Name: "institution_id", Value: visit.InstitutionID},
		{Name: "purpose", Value: visit.Purpose},
		{Name: "notes", Value: visit.Notes},
		{Name: "visited_at", Value: visit.VisitedAt.Format(time.RFC3339)},
	}
	files := make([]FilePart, 0, len(attachments))
	for _, a := range attachments {
		files = append(files, FilePart{Name: a.Name, MimeType: a.MimeType, Content: a.Content})
	}

	sub, err := EncodeSubmission(fields, files)
	if err != nil {
		return nil, err
	}

	var out dto.VisitResponse
	if err := c.doSubmit(ctx, "/api/visits", sub, &out); err != nil {
		return nil, err
	}
	c.log.Info().Str("visit_id", out.ID).Int("adjuntos", len(files)).Msg("visita registrada")
	return &out, nil
}
