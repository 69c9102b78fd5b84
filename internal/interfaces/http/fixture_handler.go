package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-retail/internal/application/dto"
	appretail "github.com/jhoicas/inventario-retail/internal/application/retail"
	domainretail "github.com/jhoicas/inventario-retail/internal/domain/retail"
)

// FixtureHandler sirve el archivo de ejemplo de ventas.
type FixtureHandler struct {
	uc *appretail.FixtureUseCase
}

// NewFixtureHandler construye el handler.
func NewFixtureHandler(uc *appretail.FixtureUseCase) *FixtureHandler {
	return &FixtureHandler{uc: uc}
}

// SampleRetail godoc
// @Summary      Descargar sample_retail.xlsx
// @Tags         fixtures
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/fixtures/sample-retail [get]
func (h *FixtureHandler) SampleRetail(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.WriteTo(c.UserContext(), &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Attachment(domainretail.SampleFileName)
	return c.Send(buf.Bytes())
}
