package dto

import "encoding/json"

// Page envoltura paginada del backend. totalPages llega en snake o camel case
// según el servicio que responda; limit y total_pages pueden faltar — el
// decode lo tolera y el walker de paging aplica sus fallbacks.
type Page[T any] struct {
	Data       []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// UnmarshalJSON acepta total_pages y totalPages indistintamente.
func (p *Page[T]) UnmarshalJSON(b []byte) error {
	var aux struct {
		Data            []T  `json:"data"`
		Total           int  `json:"total"`
		Page            int  `json:"page"`
		Limit           int  `json:"limit"`
		TotalPagesCamel *int `json:"totalPages"`
		TotalPagesSnake *int `json:"total_pages"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p.Data = aux.Data
	p.Total = aux.Total
	p.Page = aux.Page
	p.Limit = aux.Limit
	switch {
	case aux.TotalPagesSnake != nil:
		p.TotalPages = *aux.TotalPagesSnake
	case aux.TotalPagesCamel != nil:
		p.TotalPages = *aux.TotalPagesCamel
	}
	return nil
}

// ErrorResponse cuerpo de error que retorna el backend.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
