// Package session persiste el principal autenticado entre peticiones.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/domain/repository"
	"github.com/bodega-titos/consola/pkg/logger"
)

// keyPrefix clave fija del principal dentro del almacén durable.
const keyPrefix = "empleado:"

// Key clave de almacenamiento del principal de una sesión.
func Key(sid string) string {
	return keyPrefix + sid
}

// Store guarda el principal serializado en JSON sobre un SessionKV.
type Store struct {
	kv  repository.SessionKV
	ttl time.Duration
	log *logger.Logger
}

// NewStore construye el store. ttl <= 0 deja la expiración al backend de almacenamiento.
func NewStore(kv repository.SessionKV, ttl time.Duration, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, ttl: ttl, log: log.Component("session")}
}

// Load devuelve el principal guardado o nil si no hay sesión.
// Un valor corrupto se reporta en el log y se trata como ausente, sin repararlo.
func (s *Store) Load(ctx context.Context, sid string) (*entity.Empleado, error) {
	if sid == "" {
		return nil, nil
	}
	raw, err := s.kv.Get(ctx, Key(sid))
	if err != nil {
		return nil, fmt.Errorf("session: leer: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var e entity.Empleado
	if err := json.Unmarshal(raw, &e); err != nil {
		s.log.Warn().Err(err).Str("sid", sid).Msg("principal guardado ilegible, se ignora")
		return nil, nil
	}
	return &e, nil
}

// Save sobrescribe el principal de la sesión.
func (s *Store) Save(ctx context.Context, sid string, e *entity.Empleado) error {
	if sid == "" || e == nil {
		return fmt.Errorf("session: sid y empleado son obligatorios")
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	if err := s.kv.Set(ctx, Key(sid), raw, s.ttl); err != nil {
		return fmt.Errorf("session: guardar: %w", err)
	}
	return nil
}

// Clear elimina el principal. Idempotente.
func (s *Store) Clear(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.kv.Delete(ctx, Key(sid)); err != nil {
		return fmt.Errorf("session: borrar: %w", err)
	}
	return nil
}
