package api

import (
	"bytes"
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
)

// UploadSuppliersCSV sube el CSV de carga masiva de proveedores como archivo
// multipart bajo el campo "archivo".
func (c *Client) UploadSuppliersCSV(ctx context.Context, csvBody []byte) (*dto.BulkUploadResponse, error) {
	var out dto.BulkUploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("archivo", "proveedores.csv", bytes.NewReader(csvBody)).
		SetResult(&out).
		Post("/api/suppliers/bulk")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, httpErrorFromResponse(resp)
	}
	c.log.Info().Int("creados", out.Created).Int("fallidos", out.Failed).Msg("carga masiva de proveedores")
	return &out, nil
}
