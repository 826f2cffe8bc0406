package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cobrify/docrender/internal/application/render"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Assembler *render.Assembler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	handler := NewRenderHandler(deps.Assembler)

	app.Get("/health", handler.Health)

	api := app.Group("/api/v1")
	documents := api.Group("/documents")
	documents.Post("/render", handler.Render)
}
