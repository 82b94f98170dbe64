// Package memory almacén de sesiones en proceso, para desarrollo y tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bodega-titos/consola/internal/domain/repository"
)

var _ repository.SessionKV = (*SessionKV)(nil)

type item struct {
	value    []byte
	expiraEn time.Time // cero = sin expiración
}

// SessionKV mapa protegido por mutex con expiración perezosa.
type SessionKV struct {
	mu    sync.RWMutex
	items map[string]item
	now   func() time.Time
}

// NewSessionKV crea un almacén vacío.
func NewSessionKV() *SessionKV {
	return &SessionKV{items: make(map[string]item), now: time.Now}
}

// Get devuelve una copia del valor; (nil, nil) si no existe o expiró.
func (s *SessionKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !it.expiraEn.IsZero() && !s.now().Before(it.expiraEn) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil, nil
	}
	out := make([]byte, len(it.value))
	copy(out, it.value)
	return out, nil
}

// Set sobrescribe el valor. ttl <= 0 no expira.
func (s *SessionKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	it := item{value: make([]byte, len(value))}
	copy(it.value, value)
	if ttl > 0 {
		it.expiraEn = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
	return nil
}

// Delete es idempotente.
func (s *SessionKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}
