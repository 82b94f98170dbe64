package forms

import (
	"sync"

	"github.com/bodega-titos/consola/internal/domain"
)

// Guard admite un único envío en curso por sesión y formulario. Un segundo envío
// concurrente se rechaza con domain.ErrSubmitInProgress, no se encola.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewGuard crea un guard vacío.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Acquire reserva el formulario; release debe llamarse al terminar el envío.
func (g *Guard) Acquire(sid, form string) (release func(), err error) {
	key := sid + "|" + form
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return nil, domain.ErrSubmitInProgress
	}
	g.inflight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, nil
}
