package listing

import (
	"context"
	"sync"
	"time"
)

// Snapshots última lista correcta por sesión y recurso. Si un refresco falla, la vista
// muestra la lista anterior con un aviso en lugar de vaciar la tabla.
//
// Cada entrada vive a lo sumo ttl desde su último refresco correcto; una sesión abandonada
// (navegador cerrado) se limpia en el barrido perezoso que hace Refresh.
type Snapshots struct {
	mu        sync.RWMutex
	data      map[snapshotKey]snapshot
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

const (
	defaultSnapshotTTL = 12 * time.Hour
	sweepEvery         = time.Minute
)

type snapshotKey struct {
	sid, recurso string
}

type snapshot struct {
	rows  any
	fecha time.Time
}

// Result lista a mostrar. Stale indica que Rows viene de un refresco anterior y Err
// explica por qué falló el último.
type Result[T any] struct {
	Rows  []T
	Stale bool
	Desde time.Time
	Err   error
}

// NewSnapshots crea el almacén vacío. ttl normalmente es el TTL de la sesión; 0 usa 12h.
func NewSnapshots(ttl time.Duration) *Snapshots {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &Snapshots{data: make(map[snapshotKey]snapshot), ttl: ttl, now: time.Now}
}

// Refresh ejecuta fetch. En éxito guarda y devuelve la lista nueva; en error devuelve la
// última guardada (si hay) marcada como Stale.
func Refresh[T any](ctx context.Context, s *Snapshots, sid, recurso string, fetch func(context.Context) ([]T, error)) Result[T] {
	key := snapshotKey{sid, recurso}
	rows, err := fetch(ctx)
	if err == nil {
		now := s.now()
		s.mu.Lock()
		s.data[key] = snapshot{rows: rows, fecha: now}
		if now.Sub(s.lastSweep) >= sweepEvery {
			s.sweepLocked(now)
		}
		s.mu.Unlock()
		return Result[T]{Rows: rows, Desde: now}
	}

	s.mu.RLock()
	prev, ok := s.data[key]
	s.mu.RUnlock()
	if ok && s.now().Sub(prev.fecha) < s.ttl {
		if prevRows, typed := prev.rows.([]T); typed {
			return Result[T]{Rows: prevRows, Stale: true, Desde: prev.fecha, Err: err}
		}
	}
	return Result[T]{Err: err}
}

// Sweep elimina las entradas con más de ttl desde su último refresco y devuelve cuántas borró.
func (s *Snapshots) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *Snapshots) sweepLocked(now time.Time) int {
	s.lastSweep = now
	n := 0
	for k, v := range s.data {
		if now.Sub(v.fecha) >= s.ttl {
			delete(s.data, k)
			n++
		}
	}
	return n
}

// Len cantidad de listas guardadas.
func (s *Snapshots) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Forget descarta todo lo guardado de una sesión (logout).
func (s *Snapshots) Forget(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.data {
		if k.sid == sid {
			delete(s.data, k)
		}
	}
}
