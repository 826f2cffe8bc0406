package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrNotRenderable = errors.New("el documento no cumple los invariantes para renderizarse")
	ErrRenderFailed  = errors.New("fallo al serializar el documento")
)
