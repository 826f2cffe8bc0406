// Package filesink guarda los documentos generados en un filesystem
// abstraído con afero, intercambiable en tests por uno en memoria.
package filesink

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Local implementa render.FileSink sobre un directorio base.
type Local struct {
	fs   afero.Fs
	base string
}

// NewLocal construye el sink; fs nil usa el filesystem del sistema.
func NewLocal(fs afero.Fs, base string) *Local {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Local{fs: fs, base: base}
}

// Save escribe el documento bajo el directorio base y devuelve la ruta.
func (s *Local) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(s.base, 0o755); err != nil {
		return "", fmt.Errorf("filesink: creando %s: %w", s.base, err)
	}
	path := filepath.Join(s.base, filename)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("filesink: escribiendo %s: %w", path, err)
	}
	return path, nil
}
