package api

import (
	"context"
	"strconv"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/pkg/paging"
)

// DeliveriesPage obtiene una página de entregas programadas para una fecha
// (YYYY-MM-DD). Es la capacidad que consume paging.FetchAll.
func (c *Client) DeliveriesPage(ctx context.Context, date string, page, limit int) (paging.Page[entity.Delivery], error) {
	var envelope dto.Page[dto.DeliveryDTO]
	query := map[string]string{
		"date":  date,
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
	if err := c.doGet(ctx, "/api/deliveries", query, &envelope); err != nil {
		return paging.Page[entity.Delivery]{}, err
	}

	out := paging.Page[entity.Delivery]{
		Total:      envelope.Total,
		Limit:      envelope.Limit,
		TotalPages: envelope.TotalPages,
		Data:       make([]entity.Delivery, 0, len(envelope.Data)),
	}
	for _, d := range envelope.Data {
		out.Data = append(out.Data, d.ToEntity())
	}
	return out, nil
}
