// Package assets resuelve URLs de logos a imágenes decodificadas, con
// caché, reintentos y degradación silenciosa: un logo inaccesible nunca
// detiene un render.
package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cobrify/docrender/internal/application/render"
	"github.com/cobrify/docrender/pkg/logger"
)

// maxLogoBytes limita la descarga para no retener logos desmedidos.
const maxLogoBytes = 5 << 20

// StorageResolver es el acceso privilegiado al storage de la plataforma.
// Se consulta antes del GET genérico para URLs que le pertenecen.
type StorageResolver interface {
	CanResolve(url string) bool
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Options son los parámetros de descarga y caché del loader.
type Options struct {
	Attempts int           // intentos por nivel
	Backoff  time.Duration // espera entre intentos
	Timeout  time.Duration // límite por intento
	CacheTTL time.Duration
}

// DefaultOptions replica la política estándar: dos intentos por nivel con
// un segundo de espera, diez segundos por intento y caché de un día.
func DefaultOptions() Options {
	return Options{
		Attempts: 2,
		Backoff:  time.Second,
		Timeout:  10 * time.Second,
		CacheTTL: 24 * time.Hour,
	}
}

// Loader implementa render.ImageLoader: caché, luego el resolver de
// storage, luego un GET genérico.
type Loader struct {
	client   *http.Client
	cache    render.CacheStore // opcional
	resolver StorageResolver   // opcional
	opts     Options
	log      *logger.Logger
}

// NewLoader construye el loader. cache y resolver pueden ser nil; client
// nil usa http.DefaultClient.
func NewLoader(client *http.Client, cache render.CacheStore, resolver StorageResolver, opts Options, log *logger.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	return &Loader{client: client, cache: cache, resolver: resolver, opts: opts, log: log}
}

// Load resuelve la URL a un asset decodificado. ok=false significa "sin
// logo"; el render continúa sin imagen.
func (l *Loader) Load(ctx context.Context, url string) (*render.Asset, bool) {
	if url == "" {
		return nil, false
	}

	if asset, ok := l.fromCache(ctx, url); ok {
		return asset, true
	}

	data, ok := l.fetch(ctx, url)
	if !ok {
		return nil, false
	}
	asset, ok := decodeAsset(data)
	if !ok {
		l.log.Warn().Str("url", url).Msg("logo descargado pero no decodificable")
		return nil, false
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, cacheKey(url), encodeDataURI(asset.Format, data), l.opts.CacheTTL); err != nil {
			// Best-effort: el siguiente render vuelve a descargar.
			l.log.Debug().Err(err).Msg("no se pudo cachear el logo")
		}
	}
	return asset, true
}

func cacheKey(url string) string { return "logo:" + url }

func (l *Loader) fromCache(ctx context.Context, url string) (*render.Asset, bool) {
	if l.cache == nil {
		return nil, false
	}
	value, ok := l.cache.Get(ctx, cacheKey(url))
	if !ok {
		return nil, false
	}
	data, ok := decodeDataURI(value)
	if !ok {
		return nil, false
	}
	return decodeAsset(data)
}

// fetch recorre los niveles de descarga en orden. Cada nivel agota sus
// intentos antes de ceder al siguiente.
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, bool) {
	if l.resolver != nil && l.resolver.CanResolve(url) {
		if data, ok := l.attempt(ctx, url, l.resolver.Fetch); ok {
			return data, true
		}
		l.log.Debug().Str("url", url).Msg("storage no resolvió el logo, se intenta GET directo")
	}
	return l.attempt(ctx, url, l.httpGet)
}

func (l *Loader) attempt(ctx context.Context, url string, do func(context.Context, string) ([]byte, error)) ([]byte, bool) {
	for i := 0; i < l.opts.Attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, false
			case <-time.After(l.opts.Backoff):
			}
		}
		attemptCtx, cancel := context.WithTimeout(ctx, l.opts.Timeout)
		data, err := do(attemptCtx, url)
		cancel()
		if err == nil && len(data) > 0 {
			return data, true
		}
		l.log.Debug().Err(err).Str("url", url).Int("attempt", i+1).Msg("descarga de logo fallida")
	}
	return nil, false
}

func (l *Loader) httpGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: estado %d al descargar %s", resp.StatusCode, url)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
}

// decodeAsset obtiene formato y dimensiones sin decodificar los píxeles.
func decodeAsset(data []byte) (*render.Asset, bool) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, false
	}
	return &render.Asset{
		Data:   data,
		Format: strings.ToUpper(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, true
}

// ── Data URI de la caché ──

func encodeDataURI(format string, data []byte) string {
	mime := "image/png"
	if strings.EqualFold(format, "JPEG") {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func decodeDataURI(s string) ([]byte, bool) {
	if !strings.HasPrefix(s, "data:") {
		return nil, false
	}
	idx := strings.Index(s, ";base64,")
	if idx < 0 {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(s[idx+len(";base64,"):])
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}
