package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKV_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	kv := NewSessionKV()

	got, err := kv.Get(ctx, "empleado:x")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, kv.Set(ctx, "empleado:x", []byte(`{"a":1}`), time.Hour))
	got, err = kv.Get(ctx, "empleado:x")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	require.NoError(t, kv.Delete(ctx, "empleado:x"))
	require.NoError(t, kv.Delete(ctx, "empleado:x"))
	got, err = kv.Get(ctx, "empleado:x")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionKV_Expira(t *testing.T) {
	ctx := context.Background()
	kv := NewSessionKV()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	kv.now = func() time.Time { return now }

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), time.Minute))
	now = now.Add(59 * time.Second)
	got, _ := kv.Get(ctx, "k")
	assert.Equal(t, "v", string(got))

	now = now.Add(time.Second)
	got, _ = kv.Get(ctx, "k")
	assert.Nil(t, got)
}

func TestSessionKV_GetDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	kv := NewSessionKV()
	require.NoError(t, kv.Set(ctx, "k", []byte("abc"), 0))

	got, _ := kv.Get(ctx, "k")
	got[0] = 'z'

	again, _ := kv.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}
