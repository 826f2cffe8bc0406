package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrify/docrender/pkg/logger"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fastOptions() Options {
	return Options{Attempts: 2, Backoff: time.Millisecond, Timeout: time.Second, CacheTTL: time.Hour}
}

// memCache es una caché mínima en memoria para los tests del loader.
type memCache struct {
	data map[string]string
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string]string{}} }

func (m *memCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.data[key] = value
	m.sets++
	return nil
}

func TestLoader_DescargaYDecodifica(t *testing.T) {
	logo := pngBytes(t, 300, 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(logo)
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, nil, fastOptions(), logger.Nop())
	asset, ok := l.Load(context.Background(), srv.URL+"/logo.png")
	require.True(t, ok)
	assert.Equal(t, "PNG", asset.Format)
	assert.Equal(t, 300, asset.Width)
	assert.Equal(t, 100, asset.Height)
	assert.InDelta(t, 3.0, asset.AspectRatio(), 0.001)
}

func TestLoader_CacheEvitaLaRed(t *testing.T) {
	logo := pngBytes(t, 100, 100)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(logo)
	}))
	defer srv.Close()

	cache := newMemCache()
	l := NewLoader(srv.Client(), cache, nil, fastOptions(), logger.Nop())
	url := srv.URL + "/logo.png"

	_, ok := l.Load(context.Background(), url)
	require.True(t, ok)
	require.Equal(t, int32(1), hits.Load())
	require.Equal(t, 1, cache.sets)

	_, ok = l.Load(context.Background(), url)
	require.True(t, ok)
	assert.Equal(t, int32(1), hits.Load(), "el segundo render sale de la caché")
}

func TestLoader_ReintentaYLuegoCede(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, nil, fastOptions(), logger.Nop())
	asset, ok := l.Load(context.Background(), srv.URL+"/logo.png")
	assert.False(t, ok)
	assert.Nil(t, asset)
	assert.Equal(t, int32(2), hits.Load(), "dos intentos por nivel")
}

func TestLoader_RecuperaEnElSegundoIntento(t *testing.T) {
	logo := pngBytes(t, 50, 50)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write(logo)
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, nil, fastOptions(), logger.Nop())
	_, ok := l.Load(context.Background(), srv.URL+"/logo.png")
	assert.True(t, ok)
	assert.Equal(t, int32(2), hits.Load())
}

type fakeResolver struct {
	data  []byte
	calls int
}

func (f *fakeResolver) CanResolve(url string) bool { return true }

func (f *fakeResolver) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.calls++
	return f.data, nil
}

func TestLoader_ElResolverTienePrioridad(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	res := &fakeResolver{data: pngBytes(t, 80, 40)}
	l := NewLoader(srv.Client(), nil, res, fastOptions(), logger.Nop())

	asset, ok := l.Load(context.Background(), srv.URL+"/logo.png")
	require.True(t, ok)
	assert.Equal(t, 1, res.calls)
	assert.Zero(t, hits.Load(), "con el resolver no se toca el GET genérico")
	assert.Equal(t, 80, asset.Width)
}

func TestLoader_ContenidoNoDecodificable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("no soy una imagen"))
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, nil, fastOptions(), logger.Nop())
	_, ok := l.Load(context.Background(), srv.URL+"/logo.png")
	assert.False(t, ok)
}

func TestLoader_URLVacia(t *testing.T) {
	l := NewLoader(nil, nil, nil, fastOptions(), logger.Nop())
	_, ok := l.Load(context.Background(), "")
	assert.False(t, ok)
}

func TestDataURI_IdaYVuelta(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := encodeDataURI("PNG", data)
	assert.Contains(t, uri, "data:image/png;base64,")

	back, ok := decodeDataURI(uri)
	require.True(t, ok)
	assert.Equal(t, data, back)

	_, ok = decodeDataURI("texto plano")
	assert.False(t, ok)
}
