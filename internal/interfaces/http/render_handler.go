package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cobrify/docrender/internal/application/dto"
	"github.com/cobrify/docrender/internal/application/render"
	"github.com/cobrify/docrender/internal/domain"
	"github.com/cobrify/docrender/internal/domain/entity"
)

// RenderHandler maneja las peticiones de generación de comprobantes.
type RenderHandler struct {
	assembler *render.Assembler
}

// NewRenderHandler construye el handler.
func NewRenderHandler(assembler *render.Assembler) *RenderHandler {
	return &RenderHandler{assembler: assembler}
}

// Render genera el PDF del comprobante y lo devuelve inline.
// POST /api/v1/documents/render
func (h *RenderHandler) Render(c *fiber.Ctx) error {
	var req dto.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	res, err := h.assembler.Render(
		c.Context(),
		req.Invoice.ToEntity(),
		req.Company.ToEntity(),
		dto.BranchesToEntity(req.Branches),
	)
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			issues := make([]dto.FieldIssue, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				issues = append(issues, dto.FieldIssue{Field: f.Field, Reason: f.Reason})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "NOT_RENDERABLE",
				Message: "el comprobante viola el contrato de entrada",
				Fields:  issues,
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+res.Filename+`"`)
	return c.Send(res.Bytes)
}

// Health responde el chequeo de vida del servicio.
// GET /health
func (h *RenderHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
