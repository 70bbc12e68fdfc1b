// Package api implementa el cliente REST contra el backend de pedidos
// institucionales. Todos los wrappers devuelven entidades de dominio o un
// *HTTPError con el código de estado y el detalle del servidor.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tu-usuario/pedidos-pro/pkg/config"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
)

// HTTPError error de transporte o respuesta no-2xx del backend.
type HTTPError struct {
	StatusCode int
	Status     string
	Detail     string // mensaje del servidor si lo envió; si no, fallback genérico
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("error HTTP %s: %s", e.Status, e.Detail)
}

// Client cliente REST del backend.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// NewClient construye el cliente con base URL, token de sesión y timeout.
func NewClient(cfg config.APIConfig, log *logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(1).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		})

	if cfg.Token != "" {
		httpClient.SetAuthScheme("Bearer")
		httpClient.SetAuthToken(cfg.Token)
	}

	apiLog := log.Component("api")
	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		apiLog.Debug().
			Str("método", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("estado", resp.StatusCode()).
			Dur("duración", resp.Time()).
			Msg("respuesta del backend")
		return nil
	})

	return &Client{
		http: httpClient,
		log:  apiLog,
	}
}

func (c *Client) doGet(ctx context.Context, path string, query map[string]string, result any) error {
	req := c.http.R().SetContext(ctx).SetResult(result)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("petición GET %s: %w", path, err)
	}
	if resp.IsError() {
		return httpErrorFromResponse(resp)
	}
	return nil
}

func (c *Client) doPostJSON(ctx context.Context, path string, headers map[string]string, body, result any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("petición POST %s: %w", path, err)
	}
	if resp.IsError() {
		return httpErrorFromResponse(resp)
	}
	return nil
}

// doSubmit envía una Submission ya codificada. El transporte fija aquí el
// Content-Type: application/json para la variante JSON, y para multipart lo
// deriva del boundary que expone el encoder.
func (c *Client) doSubmit(ctx context.Context, path string, sub Submission, result any) error {
	req := c.http.R().SetContext(ctx).SetResult(result)

	switch s := sub.(type) {
	case JSONSubmission:
		req.SetHeader("Content-Type", "application/json").SetBody(s.Body)
	case MultipartSubmission:
		req.SetHeader("Content-Type", "multipart/form-data; boundary="+s.Boundary).SetBody(s.Body)
	default:
		return fmt.Errorf("tipo de submission desconocido %T", sub)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("petición POST %s: %w", path, err)
	}
	if resp.IsError() {
		return httpErrorFromResponse(resp)
	}
	return nil
}

// httpErrorFromResponse extrae el detalle del cuerpo de error del servidor
// (message o detail); sin cuerpo interpretable usa un fallback genérico.
func httpErrorFromResponse(resp *resty.Response) *HTTPError {
	detail := "el servidor respondió con un error"

	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		switch {
		case body.Message != "":
			detail = body.Message
		case body.Detail != "":
			detail = body.Detail
		}
	}

	return &HTTPError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Detail:     detail,
	}
}
