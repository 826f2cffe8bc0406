package pdf

import (
	"bytes"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const qrPixelSize = 300

// EncodeQR codifica el payload de validación a un PNG cuadrado con
// corrección de errores media. Devuelve nil ante cualquier fallo: el QR es
// un elemento omitible, nunca aborta el documento.
func EncodeQR(payload string) []byte {
	if payload == "" {
		return nil
	}
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil
	}
	scaled, err := barcode.Scale(code, qrPixelSize, qrPixelSize)
	if err != nil {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil
	}
	return buf.Bytes()
}
