package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cobrify/docrender/internal/application/render"
	"github.com/cobrify/docrender/internal/infrastructure/assets"
	"github.com/cobrify/docrender/internal/infrastructure/cache"
	infrapdf "github.com/cobrify/docrender/internal/infrastructure/pdf"
	httpRouter "github.com/cobrify/docrender/internal/interfaces/http"
	"github.com/cobrify/docrender/pkg/config"
	"github.com/cobrify/docrender/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando servicio de render")

	ctx := context.Background()

	// Caché de logos: Redis si hay URL configurada, memoria si no.
	var logoCache render.CacheStore
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		logoCache = redisCache
		log.Info().Msg("caché de logos en Redis")
	} else {
		logoCache = cache.NewMemory()
	}

	loader := assets.NewLoader(http.DefaultClient, logoCache, nil, assets.Options{
		Attempts: cfg.Render.FetchRetries,
		Backoff:  cfg.Render.FetchBackoff(),
		Timeout:  cfg.Render.FetchTimeout(),
		CacheTTL: cfg.Render.CacheTTL(),
	}, log)

	generator := infrapdf.NewGenerator(log)
	assembler := render.NewAssembler(generator, loader, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    2 << 20,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Assembler: assembler,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("servicio detenido")
}
