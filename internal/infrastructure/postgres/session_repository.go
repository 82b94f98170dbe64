package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bodega-titos/consola/internal/domain/repository"
)

var _ repository.SessionKV = (*SessionRepo)(nil)

// SessionRepo almacén de sesiones en la tabla sesiones (clave, datos jsonb, expira_en).
type SessionRepo struct {
	q   Querier
	now func() time.Time
}

// NewSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q, now: time.Now}
}

// Get devuelve datos de una sesión vigente, o (nil, nil).
func (r *SessionRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT datos FROM sesiones
		WHERE clave = $1 AND (expira_en IS NULL OR expira_en > now())`
	var datos []byte
	if err := r.q.QueryRow(ctx, query, key).Scan(&datos); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sesion: %w", err)
	}
	return datos, nil
}

// Set inserta o sobrescribe. ttl <= 0 guarda sin expiración.
func (r *SessionRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiraEn *time.Time
	if ttl > 0 {
		t := r.now().Add(ttl).UTC()
		expiraEn = &t
	}
	query := `
		INSERT INTO sesiones (clave, datos, expira_en)
		VALUES ($1, $2, $3)
		ON CONFLICT (clave) DO UPDATE SET datos = EXCLUDED.datos, expira_en = EXCLUDED.expira_en`
	if _, err := r.q.Exec(ctx, query, key, value, expiraEn); err != nil {
		return fmt.Errorf("set sesion: %w", err)
	}
	return nil
}

// Delete borra la sesión; no falla si no existe.
func (r *SessionRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sesiones WHERE clave = $1`, key); err != nil {
		return fmt.Errorf("delete sesion: %w", err)
	}
	return nil
}

// PurgeExpired elimina las sesiones vencidas y devuelve cuántas borró.
func (r *SessionRepo) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sesiones WHERE expira_en IS NOT NULL AND expira_en <= now()`)
	if err != nil {
		return 0, fmt.Errorf("purge sesiones: %w", err)
	}
	return tag.RowsAffected(), nil
}
