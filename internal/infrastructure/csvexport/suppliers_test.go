package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/infrastructure/csvexport"
)

// TestWriteSuppliers_EncabezadoFijo la primera fila es exactamente el
// encabezado que espera el backend.
func TestWriteSuppliers_EncabezadoFijo(t *testing.T) {
	out, err := csvexport.WriteSuppliers(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		"nombre,id_tax,direccion,telefono,correo,contacto,estado,certificadoNombre,certificadoCuerpo,certificadoFechaCertificacion,certificadoFechaVencimiento,certificadoUrl",
		lines[0])
}

// TestWriteSuppliers_EscapaCamposEspeciales comas, comillas y saltos de línea
// quedan entre comillas dobles y el archivo sigue siendo parseable.
func TestWriteSuppliers_EscapaCamposEspeciales(t *testing.T) {
	suppliers := []entity.Supplier{{
		Name:    `Droguería "La Esperanza", S.A.S.`,
		TaxID:   "900123456-7",
		Address: "Calle 10 # 5-21,\nBodega 3",
		Phone:   "+57 601 5551234",
		Email:   "compras@esperanza.co",
		Contact: "María Pérez",
		Status:  "ACTIVO",
		Certificate: entity.SupplierCertificate{
			Name:        "INVIMA",
			Body:        "Instituto Nacional de Vigilancia",
			CertifiedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			ExpiresAt:   time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
			URL:         "https://certs.example.com/invima/900123456-7",
		},
	}}

	out, err := csvexport.WriteSuppliers(suppliers)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err, "el CSV generado debe ser parseable de vuelta")
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, `Droguería "La Esperanza", S.A.S.`, row[0], "comas y comillas deben sobrevivir el round-trip")
	assert.Equal(t, "Calle 10 # 5-21,\nBodega 3", row[2], "el salto de línea embebido debe conservarse")
	assert.Equal(t, "2025-06-01", row[9])
	assert.Equal(t, "2027-06-01", row[10])
}

// TestWriteSuppliers_FechasVacias certificado sin fechas produce columnas vacías.
func TestWriteSuppliers_FechasVacias(t *testing.T) {
	out, err := csvexport.WriteSuppliers([]entity.Supplier{{Name: "Proveedor X", Status: "INACTIVO"}})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	row := records[1]
	assert.Empty(t, row[9])
	assert.Empty(t, row[10])
}
