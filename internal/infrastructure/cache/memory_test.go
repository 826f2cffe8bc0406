package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GuardaYRecupera(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, ok := m.Get(ctx, "logo:a")
	assert.False(t, ok, "caché fría")

	require.NoError(t, m.Set(ctx, "logo:a", "data:image/png;base64,AA==", time.Hour))
	v, ok := m.Get(ctx, "logo:a")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AA==", v)
}

func TestMemory_UnaSolaEntrada(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "logo:a", "uno", time.Hour))
	require.NoError(t, m.Set(ctx, "logo:b", "dos", time.Hour))

	_, ok := m.Get(ctx, "logo:a")
	assert.False(t, ok, "la escritura nueva desaloja la anterior")
	v, ok := m.Get(ctx, "logo:b")
	require.True(t, ok)
	assert.Equal(t, "dos", v)
}

func TestMemory_TTLExpira(t *testing.T) {
	m := NewMemory()
	now := time.Now()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "logo:a", "uno", time.Minute))
	_, ok := m.Get(ctx, "logo:a")
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = m.Get(ctx, "logo:a")
	assert.False(t, ok, "entrada expirada")
}
