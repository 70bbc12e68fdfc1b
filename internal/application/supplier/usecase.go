package supplier

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/infrastructure/csvexport"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
)

// UploadAPI capacidad de subir el CSV de proveedores.
type UploadAPI interface {
	UploadSuppliersCSV(ctx context.Context, csvBody []byte) (*dto.BulkUploadResponse, error)
}

// BulkUploadUseCase arma el CSV de carga masiva y lo sube al backend.
type BulkUploadUseCase struct {
	api UploadAPI
	log *logger.Logger
}

// NewBulkUploadUseCase construye el caso de uso.
func NewBulkUploadUseCase(api UploadAPI, log *logger.Logger) *BulkUploadUseCase {
	return &BulkUploadUseCase{api: api, log: log.Component("supplier")}
}

// Upload valida, serializa y sube los proveedores.
func (uc *BulkUploadUseCase) Upload(ctx context.Context, suppliers []entity.Supplier) (*dto.BulkUploadResponse, error) {
	if len(suppliers) == 0 {
		return nil, &domain.ValidationError{Field: "suppliers", Message: "no hay proveedores para cargar"}
	}
	for _, s := range suppliers {
		if s.Name == "" || s.TaxID == "" {
			return nil, &domain.ValidationError{Field: "suppliers", Message: "nombre e id_tax son requeridos"}
		}
	}

	body, err := csvexport.WriteSuppliers(suppliers)
	if err != nil {
		return nil, err
	}

	out, err := uc.api.UploadSuppliersCSV(ctx, body)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("creados", out.Created).Int("fallidos", out.Failed).Msg("carga masiva completada")
	return out, nil
}
