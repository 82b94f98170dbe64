package repository

import (
	"context"
	"time"
)

// SessionKV puerto de almacenamiento durable de sesiones (bytes crudos por clave).
// Get devuelve (nil, nil) cuando la clave no existe o ya expiró.
type SessionKV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
