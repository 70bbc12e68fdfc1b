package paging

import "sync/atomic"

// Generation token monotónico para descartar respuestas fuera de orden:
// cada recorrido nuevo toma un token con Next(); al completar, su resultado
// solo se publica si IsCurrent(token) sigue siendo cierto. Así una consulta
// vieja y lenta no pisa el resultado de una más nueva.
//
// Se guarda como parte del estado de la pantalla que lo posee, no global.
type Generation struct {
	n atomic.Uint64
}

// Next inicia un recorrido nuevo y devuelve su token.
func (g *Generation) Next() uint64 { return g.n.Add(1) }

// Current devuelve el token del recorrido más reciente.
func (g *Generation) Current() uint64 { return g.n.Load() }

// IsCurrent indica si el token sigue siendo el recorrido activo.
func (g *Generation) IsCurrent(token uint64) bool { return g.n.Load() == token }
