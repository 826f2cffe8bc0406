package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrify/docrender/internal/application/dto"
	"github.com/cobrify/docrender/internal/application/render"
	"github.com/cobrify/docrender/pkg/logger"
)

type stubRenderer struct{}

func (stubRenderer) Render(ctx context.Context, in render.Input) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func testApp() *fiber.App {
	app := fiber.New()
	Router(app, RouterDeps{
		Assembler: render.NewAssembler(stubRenderer{}, nil, logger.Nop()),
	})
	return app
}

func renderBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(fiber.Map{
		"invoice": fiber.Map{
			"kind":      "factura",
			"series":    "F001",
			"sequence":  "00000123",
			"date":      "2025-12-14",
			"currency":  "PEN",
			"subtotal":  "100.00",
			"taxRate":   "18",
			"taxAmount": "18.00",
			"total":     "118.00",
			"customer": fiber.Map{
				"name":           "COMERCIAL ANDINA S.A.C.",
				"documentType":   "RUC",
				"documentNumber": "20601030013",
			},
			"items": []fiber.Map{{
				"description": "Servicio de transporte",
				"quantity":    "1",
				"unit":        "UNIDAD",
				"unitPrice":   "100.00",
				"subtotal":    "100.00",
			}},
		},
		"company": fiber.Map{
			"legalName": "TRANSPORTES CUSCO S.R.L.",
			"ruc":       "20512345678",
			"tax":       fiber.Map{"rate": "18"},
		},
	})
	require.NoError(t, err)
	return body
}

func TestRenderHandler_DevuelvePDF(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/documents/render", bytes.NewReader(renderBody(t)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "Factura_F001-00000123.pdf")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(data))
}

func TestRenderHandler_ComprobanteInvalido(t *testing.T) {
	app := testApp()

	body := []byte(`{"invoice":{"kind":"factura","series":"F001","sequence":"00000123"},"company":{"legalName":"X","ruc":"20512345678"}}`)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/documents/render", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "NOT_RENDERABLE", out.Code)
	assert.NotEmpty(t, out.Fields, "se listan los campos ofensores")
}

func TestRenderHandler_CuerpoInvalido(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/documents/render", bytes.NewReader([]byte("{no es json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
