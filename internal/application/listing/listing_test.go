package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodega-titos/consola/internal/domain/entity"
)

func categorias() []entity.Categoria {
	return []entity.Categoria{{ID: 2, Nombre: "Snacks"}, {ID: 1, Nombre: "bebidas"}, {ID: 3, Nombre: "Abarrotes"}}
}

func TestApply_NoModificaOriginal(t *testing.T) {
	rows := categorias()
	out := Apply(rows, CategoriaColumns, Query{Orden: "nombre"})

	assert.Equal(t, []string{"Abarrotes", "bebidas", "Snacks"}, nombres(out))
	assert.Equal(t, categorias(), rows, "la lista recibida queda intacta")
}

func TestApply_FiltroYOrdenDesc(t *testing.T) {
	out := Apply(categorias(), CategoriaColumns, Query{Q: "A", Orden: "id", Dir: "desc"})
	assert.Equal(t, []string{"Abarrotes", "Snacks", "bebidas"}, nombres(out))

	out = Apply(categorias(), CategoriaColumns, Query{Q: "beb"})
	assert.Equal(t, []string{"bebidas"}, nombres(out))
}

func TestApply_OrdenDesconocidoMantieneOrden(t *testing.T) {
	out := Apply(categorias(), CategoriaColumns, Query{Orden: "no-existe"})
	assert.Equal(t, nombres(categorias()), nombres(out))
}

func TestRefresh_FailSoft(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshots(time.Hour)
	ok := func(context.Context) ([]entity.Categoria, error) { return categorias(), nil }
	fail := func(context.Context) ([]entity.Categoria, error) { return nil, errors.New("HTTP 500") }

	r := Refresh(ctx, s, "sid", "categorias", fail)
	assert.Error(t, r.Err)
	assert.Nil(t, r.Rows)
	assert.False(t, r.Stale)

	r = Refresh(ctx, s, "sid", "categorias", ok)
	require.NoError(t, r.Err)
	assert.Len(t, r.Rows, 3)

	r = Refresh(ctx, s, "sid", "categorias", fail)
	assert.Error(t, r.Err)
	assert.True(t, r.Stale)
	assert.Len(t, r.Rows, 3, "se conserva la lista anterior")

	r = Refresh(ctx, s, "otra", "categorias", fail)
	assert.Nil(t, r.Rows, "las sesiones no comparten listas")

	s.Forget("sid")
	r = Refresh(ctx, s, "sid", "categorias", fail)
	assert.Nil(t, r.Rows)
}

func TestSnapshots_VencenConElTTL(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshots(time.Hour)
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	now := base
	s.now = func() time.Time { return now }
	ok := func(context.Context) ([]entity.Categoria, error) { return categorias(), nil }
	fail := func(context.Context) ([]entity.Categoria, error) { return nil, errors.New("HTTP 500") }

	Refresh(ctx, s, "abandonada", "categorias", ok)
	now = base.Add(30 * time.Minute)
	Refresh(ctx, s, "activa", "categorias", ok)
	require.Equal(t, 2, s.Len())

	now = base.Add(61 * time.Minute)
	r := Refresh(ctx, s, "abandonada", "categorias", fail)
	assert.Nil(t, r.Rows, "una lista vencida no se sirve como respaldo")
	assert.False(t, r.Stale)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	r = Refresh(ctx, s, "activa", "categorias", fail)
	assert.True(t, r.Stale)
	assert.Len(t, r.Rows, 3)
}

func TestSnapshots_RefreshBarreSesionesAbandonadas(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshots(time.Hour)
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	now := base
	s.now = func() time.Time { return now }
	ok := func(context.Context) ([]entity.Categoria, error) { return categorias(), nil }

	for _, sid := range []string{"a", "b", "c"} {
		Refresh(ctx, s, sid, "categorias", ok)
	}
	require.Equal(t, 3, s.Len())

	// Ninguna de las tres vuelve; otra sesión refresca dos horas después.
	now = base.Add(2 * time.Hour)
	Refresh(ctx, s, "nueva", "categorias", ok)
	assert.Equal(t, 1, s.Len())
}

func nombres(rows []entity.Categoria) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Nombre
	}
	return out
}
