package dto

import (
	"time"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// SupplierRecord un proveedor tal como llega en el archivo de carga masiva.
type SupplierRecord struct {
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Contact     string    `json:"contact"`
	Status      string    `json:"status"`
	CertName    string    `json:"cert_name"`
	CertBody    string    `json:"cert_body"`
	CertifiedAt time.Time `json:"certified_at"`
	CertExpires time.Time `json:"cert_expires"`
	CertURL     string    `json:"cert_url"`
}

// ToEntity convierte el registro a la entidad de dominio.
func (r SupplierRecord) ToEntity() entity.Supplier {
	return entity.Supplier{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Contact: r.Contact,
		Status:  r.Status,
		Certificate: entity.SupplierCertificate{
			Name:        r.CertName,
			Body:        r.CertBody,
			CertifiedAt: r.CertifiedAt,
			ExpiresAt:   r.CertExpires,
			URL:         r.CertURL,
		},
	}
}

// BulkUploadResponse resultado de la carga masiva de proveedores por CSV.
type BulkUploadResponse struct {
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
