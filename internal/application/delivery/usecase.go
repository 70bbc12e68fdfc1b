package delivery

import (
	"context"
	"sync"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/pkg/logger"
	"github.com/tu-usuario/pedidos-pro/pkg/paging"
)

// DeliveryAPI capacidad de pedir una página de entregas para una fecha.
type DeliveryAPI interface {
	DeliveriesPage(ctx context.Context, date string, page, limit int) (paging.Page[entity.Delivery], error)
}

// ScheduleUseCase trae TODAS las entregas programadas de una fecha (la agenda
// necesita la vista completa, no una página). Si la pantalla dispara una
// consulta nueva mientras otra sigue en vuelo, el token de generación descarta
// el resultado viejo en lugar de dejar que pise al nuevo.
type ScheduleUseCase struct {
	api      DeliveryAPI
	pageSize int
	log      *logger.Logger

	gen     paging.Generation
	mu      sync.Mutex
	current []entity.Delivery // último resultado publicado
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(api DeliveryAPI, pageSize int, log *logger.Logger) *ScheduleUseCase {
	return &ScheduleUseCase{api: api, pageSize: pageSize, log: log.Component("delivery")}
}

// Refresh recorre todas las páginas de entregas de la fecha (YYYY-MM-DD).
// Devuelve la lista y si el resultado se publicó: false significa que un
// Refresh más nuevo arrancó durante el recorrido y este resultado se descartó.
// Un fallo de página descarta todo lo acumulado (nunca lista truncada).
func (uc *ScheduleUseCase) Refresh(ctx context.Context, date string) ([]entity.Delivery, bool, error) {
	token := uc.gen.Next()

	all, err := paging.FetchAll(ctx, func(ctx context.Context, page, limit int) (paging.Page[entity.Delivery], error) {
		return uc.api.DeliveriesPage(ctx, date, page, limit)
	}, uc.pageSize)
	if err != nil {
		return nil, false, err
	}

	if !uc.gen.IsCurrent(token) {
		uc.log.Debug().Str("fecha", date).Uint64("token", token).Msg("resultado obsoleto descartado")
		return all, false, nil
	}

	uc.mu.Lock()
	uc.current = all
	uc.mu.Unlock()
	uc.log.Info().Str("fecha", date).Int("entregas", len(all)).Msg("agenda de entregas actualizada")
	return all, true, nil
}

// Current devuelve el último resultado publicado.
func (uc *ScheduleUseCase) Current() []entity.Delivery {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Delivery, len(uc.current))
	copy(out, uc.current)
	return out
}
