// Comando render: genera el PDF de un comprobante a partir de un archivo
// JSON con el mismo contrato que la API.
//
//	render -in factura.json -out ./documentos
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/cobrify/docrender/internal/application/dto"
	"github.com/cobrify/docrender/internal/application/render"
	"github.com/cobrify/docrender/internal/infrastructure/assets"
	"github.com/cobrify/docrender/internal/infrastructure/cache"
	"github.com/cobrify/docrender/internal/infrastructure/filesink"
	infrapdf "github.com/cobrify/docrender/internal/infrastructure/pdf"
	"github.com/cobrify/docrender/pkg/config"
	"github.com/cobrify/docrender/pkg/logger"
)

func main() {
	in := flag.String("in", "", "archivo JSON con el comprobante")
	out := flag.String("out", "", "directorio de salida (default: RENDER_OUTPUT_DIR)")
	env := flag.String("env", "development", "entorno (development|production)")
	flag.Parse()

	log := logger.New(logger.Config{Env: *env, Level: "info"})
	if *in == "" {
		log.Fatal().Msg("se requiere -in con el archivo del comprobante")
	}
	if *out == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("cargar configuración")
		}
		*out = cfg.Render.OutputDir
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatal().Err(err).Str("file", *in).Msg("leyendo el comprobante")
	}
	var req dto.RenderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.Fatal().Err(err).Msg("el archivo no es un comprobante válido")
	}

	loader := assets.NewLoader(http.DefaultClient, cache.NewMemory(), nil, assets.DefaultOptions(), log)
	assembler := render.NewAssembler(infrapdf.NewGenerator(log), loader, log)
	sink := filesink.NewLocal(nil, *out)

	_, location, err := assembler.RenderAndSave(
		context.Background(),
		req.Invoice.ToEntity(),
		req.Company.ToEntity(),
		dto.BranchesToEntity(req.Branches),
		sink,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo generar el documento")
	}
	log.Info().Str("file", location).Msg("documento generado")
}
