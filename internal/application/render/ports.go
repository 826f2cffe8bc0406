// Package render orquesta la composición del comprobante: validación,
// carga del logo, monto en letras, payload del QR y llamada al motor de
// layout. Las dependencias con IO entran por los puertos de este archivo.
package render

import (
	"context"
	"time"

	"github.com/cobrify/docrender/internal/domain/entity"
)

// Asset es un logo ya descargado y decodificado: bytes crudos más las
// dimensiones en píxeles que el motor necesita para la relación de aspecto.
type Asset struct {
	Data   []byte
	Format string // PNG o JPEG
	Width  int
	Height int
}

// AspectRatio devuelve ancho/alto; 0 si las dimensiones no son válidas.
func (a *Asset) AspectRatio() float64 {
	if a == nil || a.Height <= 0 || a.Width <= 0 {
		return 0
	}
	return float64(a.Width) / float64(a.Height)
}

// Input es todo lo que el motor de layout necesita para dibujar una página.
type Input struct {
	Invoice       *entity.Invoice
	Company       *entity.CompanySettings
	Branches      []entity.Branch
	Logo          *Asset // nil = encabezado solo con texto
	AmountInWords string
	QRPayload     string
}

// DocumentRenderer serializa un Input a un documento de una página.
// La implementación vive en infrastructure/pdf.
type DocumentRenderer interface {
	Render(ctx context.Context, in Input) ([]byte, error)
}

// ImageLoader resuelve una URL de logo a píxeles decodificados. Nunca
// retorna error: ok=false significa "sin logo" y el render continúa.
type ImageLoader interface {
	Load(ctx context.Context, url string) (*Asset, bool)
}

// CacheStore es el almacén clave-valor de la caché de logos (una sola
// entrada lógica con TTL). La escritura es best-effort.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// FileSink recibe el documento final para guardarlo o compartirlo
// (filesystem local, share de la plataforma, etc.). Retorna la ubicación.
type FileSink interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}
