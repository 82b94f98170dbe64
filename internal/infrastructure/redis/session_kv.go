// Package redis almacén de sesiones sobre Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bodega-titos/consola/internal/domain/repository"
	"github.com/bodega-titos/consola/pkg/config"
)

var _ repository.SessionKV = (*SessionKV)(nil)

// Cmdable comandos de Redis que usa el almacén; lo implementa *goredis.Client.
type Cmdable interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// SessionKV a diferencia de una caché, propaga los errores de conexión: perder la sesión
// en silencio equivaldría a un logout.
type SessionKV struct {
	client Cmdable
}

// NewClient crea el cliente Redis con la configuración de la app.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewSessionKV construye el almacén sobre un cliente ya creado.
func NewSessionKV(client Cmdable) *SessionKV {
	return &SessionKV{client: client}
}

// Get devuelve el valor o (nil, nil) si la clave no existe o expiró.
func (s *SessionKV) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return res, nil
}

// Set guarda con EX ttl; ttl <= 0 no expira.
func (s *SessionKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete es idempotente: DEL sobre una clave inexistente no es error.
func (s *SessionKV) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
