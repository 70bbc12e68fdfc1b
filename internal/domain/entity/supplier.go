package entity

import "time"

// SupplierCertificate certificado sanitario/comercial asociado a un proveedor.
type SupplierCertificate struct {
	Name        string
	Body        string
	CertifiedAt time.Time
	ExpiresAt   time.Time
	URL         string
}

// Supplier representa un proveedor para la carga masiva por CSV.
type Supplier struct {
	Name        string
	TaxID       string
	Address     string
	Phone       string
	Email       string
	Contact     string
	Status      string // ACTIVO, INACTIVO
	Certificate SupplierCertificate
}
