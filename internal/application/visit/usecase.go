package visit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
)

// VisitAPI capacidad de crear la visita en el backend.
type VisitAPI interface {
	CreateVisit(ctx context.Context, visit entity.Visit, attachments []entity.AttachmentData) (*dto.VisitResponse, error)
}

// RegisterVisitUseCase registra una visita de campo con cero o más adjuntos.
// Valida localmente antes de tocar la red y carga los adjuntos desde sus URIs.
type RegisterVisitUseCase struct {
	api      VisitAPI
	log      *logger.Logger
	readFile func(string) ([]byte, error) // inyectable para tests
}

// NewRegisterVisitUseCase construye el caso de uso.
func NewRegisterVisitUseCase(api VisitAPI, log *logger.Logger) *RegisterVisitUseCase {
	return &RegisterVisitUseCase{
		api:      api,
		log:      log.Component("visit"),
		readFile: os.ReadFile,
	}
}

// Register valida, carga adjuntos y envía la visita. Un slice de adjuntos
// vacío se comporta igual que ausente (el encoder toma la vía JSON).
func (uc *RegisterVisitUseCase) Register(ctx context.Context, v entity.Visit) (*dto.VisitResponse, error) {
	if v.InstitutionID == "" {
		return nil, &domain.ValidationError{Field: "institution_id", Message: "es requerido"}
	}
	if v.Purpose == "" {
		return nil, &domain.ValidationError{Field: "purpose", Message: "es requerido"}
	}
	if v.VisitedAt.IsZero() {
		v.VisitedAt = time.Now()
	}
	if v.ID == "" {
		v.ID = uuid.New().String()
	}

	data, err := uc.loadAttachments(v.Attachments)
	if err != nil {
		return nil, err
	}

	out, err := uc.api.CreateVisit(ctx, v, data)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("visita", out.ID).Str("institucion", v.InstitutionID).Msg("visita registrada")
	return out, nil
}

func (uc *RegisterVisitUseCase) loadAttachments(attachments []entity.Attachment) ([]entity.AttachmentData, error) {
	if len(attachments) == 0 {
		return nil, nil
	}
	out := make([]entity.AttachmentData, 0, len(attachments))
	for _, a := range attachments {
		content, err := uc.readFile(a.URI)
		if err != nil {
			return nil, fmt.Errorf("leer adjunto %s: %w", a.URI, err)
		}
		name := a.Name
		if name == "" {
			name = "adjunto"
		}
		out = append(out, entity.AttachmentData{Name: name, MimeType: a.MimeType, Content: content})
	}
	return out, nil
}
