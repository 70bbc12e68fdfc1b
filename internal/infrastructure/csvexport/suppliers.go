// Package csvexport serializa proveedores al formato CSV de carga masiva que
// acepta el backend web.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// supplierHeader fila de encabezado fija que espera el endpoint de carga
// masiva; el orden de columnas no es negociable.
var supplierHeader = []string{
	"nombre", "id_tax", "direccion", "telefono", "correo", "contacto", "estado",
	"certificadoNombre", "certificadoCuerpo", "certificadoFechaCertificacion",
	"certificadoFechaVencimiento", "certificadoUrl",
}

const dateLayout = "2006-01-02"

// WriteSuppliers serializa los proveedores con el encabezado fijo. Campos con
// comas, comillas o saltos de línea quedan escapados con comillas dobles
// (encoding/csv implementa el quoting estándar).
func WriteSuppliers(suppliers []entity.Supplier) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(supplierHeader); err != nil {
		return nil, fmt.Errorf("escribir encabezado CSV: %w", err)
	}
	for i, s := range suppliers {
		row := []string{
			s.Name,
			s.TaxID,
			s.Address,
			s.Phone,
			s.Email,
			s.Contact,
			s.Status,
			s.Certificate.Name,
			s.Certificate.Body,
			formatDate(s.Certificate.CertifiedAt),
			formatDate(s.Certificate.ExpiresAt),
			s.Certificate.URL,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("escribir proveedor %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
