package filesink

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_EscribeBajoElDirectorioBase(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink := NewLocal(fs, "/out/documentos")

	path, err := sink.Save(context.Background(), "Factura_F001-00000123.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "/out/documentos/Factura_F001-00000123.pdf", path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestLocal_ContextoCancelado(t *testing.T) {
	sink := NewLocal(afero.NewMemMapFs(), "/out")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sink.Save(ctx, "x.pdf", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
