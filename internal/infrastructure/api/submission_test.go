package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pedidos-pro/internal/infrastructure/api"
)

var visitFields = []api.Field{
	{Name: "institution_id", Value: "inst-1"},
	{Name: "purpose", Value: "entrega de muestras"},
	{Name: "notes", Value: "recibió la jefe de compras"},
}

// TestEncodeSubmission_SinAdjuntosEsJSON sin adjuntos el cuerpo es JSON y el
// Content-Type de la variante es application/json.
func TestEncodeSubmission_SinAdjuntosEsJSON(t *testing.T) {
	sub, err := api.EncodeSubmission(visitFields, nil)
	require.NoError(t, err)

	jsonSub, ok := sub.(api.JSONSubmission)
	require.True(t, ok, "sin adjuntos la variante debe ser JSON")
	assert.Equal(t, "application/json", jsonSub.ContentType())

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(jsonSub.Body, &decoded))
	assert.Equal(t, "inst-1", decoded["institution_id"])
	assert.Equal(t, "entrega de muestras", decoded["purpose"])
}

// TestEncodeSubmission_AdjuntosVaciosEsJSON un slice vacío explícito se trata
// igual que ausente: vía JSON, no multipart con cero archivos.
func TestEncodeSubmission_AdjuntosVaciosEsJSON(t *testing.T) {
	sub, err := api.EncodeSubmission(visitFields, []api.FilePart{})
	require.NoError(t, err)

	_, ok := sub.(api.JSONSubmission)
	assert.True(t, ok, "adjuntos vacíos deben normalizarse a la vía JSON")
}

// TestEncodeSubmission_ConAdjuntosEsMultipart con un adjunto la variante es
// multipart, sin Content-Type fijado por el encoder (solo expone el boundary).
func TestEncodeSubmission_ConAdjuntosEsMultipart(t *testing.T) {
	files := []api.FilePart{
		{Name: "foto1.jpg", MimeType: "image/jpeg", Content: []byte("jpegbytes-1")},
		{Name: "foto2.jpg", MimeType: "image/jpeg", Content: []byte("jpegbytes-2")},
	}

	sub, err := api.EncodeSubmission(visitFields, files)
	require.NoError(t, err)

	mp, ok := sub.(api.MultipartSubmission)
	require.True(t, ok, "con adjuntos la variante debe ser multipart")
	require.NotEmpty(t, mp.Boundary)

	// Decodificar el cuerpo con el boundary expuesto y verificar orden y nombres.
	reader := multipart.NewReader(bytes.NewReader(mp.Body), mp.Boundary)

	// Campos escalares primero, en orden de declaración.
	for _, f := range visitFields {
		part, err := reader.NextPart()
		require.NoError(t, err)
		assert.Equal(t, f.Name, part.FormName())
		content, err := io.ReadAll(part)
		require.NoError(t, err)
		assert.Equal(t, f.Value, string(content))
	}

	// Luego los archivos, bajo el nombre de campo fijo, preservando el orden.
	for i, f := range files {
		part, err := reader.NextPart()
		require.NoError(t, err, "debe existir la parte de archivo %d", i)
		assert.Equal(t, api.AttachmentFieldName, part.FormName())
		assert.Equal(t, f.Name, part.FileName())
		assert.Equal(t, f.MimeType, part.Header.Get("Content-Type"))
		content, err := io.ReadAll(part)
		require.NoError(t, err)
		assert.Equal(t, f.Content, content)
	}

	_, err = reader.NextPart()
	assert.Equal(t, io.EOF, err, "no debe haber partes adicionales")
}

// TestEncodeSubmission_BoundaryValido el header que derivaría el transporte
// debe ser parseable como multipart/form-data.
func TestEncodeSubmission_BoundaryValido(t *testing.T) {
	sub, err := api.EncodeSubmission(visitFields, []api.FilePart{
		{Name: "a.png", MimeType: "image/png", Content: []byte{1, 2, 3}},
	})
	require.NoError(t, err)

	mp := sub.(api.MultipartSubmission)
	mediaType, params, err := mime.ParseMediaType("multipart/form-data; boundary=" + mp.Boundary)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	assert.Equal(t, mp.Boundary, params["boundary"])
}

// TestEncodeSubmission_CuerpoEstable dos codificaciones JSON del mismo payload
// producen bytes idénticos: un reintento reusa el mismo cuerpo.
func TestEncodeSubmission_CuerpoEstable(t *testing.T) {
	sub1, err := api.EncodeSubmission(visitFields, nil)
	require.NoError(t, err)
	sub2, err := api.EncodeSubmission(visitFields, nil)
	require.NoError(t, err)

	assert.Equal(t, sub1.(api.JSONSubmission).Body, sub2.(api.JSONSubmission).Body)
}
