package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// AttachmentFieldName nombre fijo del campo de archivo en las partes multipart.
const AttachmentFieldName = "archivos"

// Field un campo escalar del payload de creación, en orden de declaración.
type Field struct {
	Name  string
	Value string
}

// FilePart un adjunto ya cargado en memoria, listo para codificar.
type FilePart struct {
	Name     string
	MimeType string
	Content  []byte
}

// Submission cuerpo listo para el cable, en una de dos variantes. El
// transporte hace switch sobre la variante en lugar de preguntar "¿hay
// adjuntos?"; el encoder es la única fuente de esa decisión.
type Submission interface {
	isSubmission()
}

// JSONSubmission variante sin adjuntos: cuerpo JSON y Content-Type
// application/json.
type JSONSubmission struct {
	Body []byte
}

func (JSONSubmission) isSubmission() {}

// ContentType el header que corresponde a la variante JSON.
func (JSONSubmission) ContentType() string { return "application/json" }

// MultipartSubmission variante con adjuntos: cuerpo multipart ya serializado.
// No fija Content-Type; expone el boundary para que el transporte lo derive
// (el header completo incluye el boundary que el encoder no controla desde
// la perspectiva del caller).
type MultipartSubmission struct {
	Body     []byte
	Boundary string
}

func (MultipartSubmission) isSubmission() {}

// EncodeSubmission transforma campos escalares + adjuntos en un cuerpo listo
// para enviar. Sin adjuntos (nil o slice vacío: la regla de normalización los
// trata igual) produce JSON; con adjuntos produce multipart con los campos en
// orden de declaración y los archivos bajo AttachmentFieldName, en orden.
//
// El cuerpo queda completamente materializado antes de cualquier petición,
// de modo que un reenvío tras fallo reutiliza bytes idénticos.
func EncodeSubmission(fields []Field, attachments []FilePart) (Submission, error) {
	if len(attachments) == 0 {
		obj := make(map[string]string, len(fields))
		for _, f := range fields {
			obj[f.Name] = f.Value
		}
		body, err := json.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("serializar payload JSON: %w", err)
		}
		return JSONSubmission{Body: body}, nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, fmt.Errorf("escribir campo %q: %w", f.Name, err)
		}
	}
	for _, a := range attachments {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, AttachmentFieldName, a.Name))
		if a.MimeType != "" {
			h.Set("Content-Type", a.MimeType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("crear parte de archivo %q: %w", a.Name, err)
		}
		if _, err := part.Write(a.Content); err != nil {
			return nil, fmt.Errorf("escribir contenido de %q: %w", a.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("cerrar multipart: %w", err)
	}

	return MultipartSubmission{Body: buf.Bytes(), Boundary: w.Boundary()}, nil
}
