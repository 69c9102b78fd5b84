package http

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-retail/internal/application/dto"
	appretail "github.com/jhoicas/inventario-retail/internal/application/retail"
	"github.com/jhoicas/inventario-retail/internal/domain"
)

// RetailHandler maneja la carga y consulta de hojas de ventas al por menor.
type RetailHandler struct {
	preview  *appretail.PreviewUseCase
	importer *appretail.ImportUseCase
	list     *appretail.ListUseCase
	maxBytes int64
}

// NewRetailHandler construye el handler. maxBytes <= 0 desactiva el límite propio (queda el de Fiber).
func NewRetailHandler(preview *appretail.PreviewUseCase, importer *appretail.ImportUseCase, list *appretail.ListUseCase, maxBytes int64) *RetailHandler {
	return &RetailHandler{preview: preview, importer: importer, list: list, maxBytes: maxBytes}
}

// Preview godoc
// @Summary      Vista previa de una hoja de ventas
// @Tags         retail
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx"
// @Success      200   {object}  dto.RetailPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/retail/preview [post]
func (h *RetailHandler) Preview(c *fiber.Ctx) error {
	file, ok, err := h.openUpload(c)
	if !ok {
		return err
	}
	defer file.Close()

	out, err := h.preview.Preview(c.UserContext(), file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Upload godoc
// @Summary      Importar hoja de ventas del día
// @Tags         retail
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Archivo .xlsx"
// @Success      200  {object}  dto.RetailUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/retail/upload [post]
func (h *RetailHandler) Upload(c *fiber.Ctx) error {
	file, ok, err := h.openUpload(c)
	if !ok {
		return err
	}
	defer file.Close()

	res, err := h.importer.Import(c.UserContext(), GetCompanyID(c), GetUserID(c), file)
	if err != nil {
		return writeError(c, err)
	}
	out := dto.RetailUploadResponse{
		Success:         true,
		Message:         "ventas procesadas correctamente",
		ProcessedCount:  res.ProcessedCount,
		SkippedProducts: res.Skipped,
		SkippedCount:    len(res.Skipped),
	}
	if len(res.Skipped) > 0 {
		out.Warning = fmt.Sprintf("se omitieron %d productos", len(res.Skipped))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas registradas
// @Tags         retail
// @Produce      json
// @Security     BearerAuth
// @Param        sold_date   query  string  false  "YYYY-MM-DD"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.RetailListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/retail [get]
func (h *RetailHandler) List(c *fiber.Ctx) error {
	var (
		q   dto.RetailListQuery
		err error
	)
	if q.SoldDate, err = queryDate(c, "sold_date"); err != nil {
		return badDate(c, "sold_date")
	}
	if q.StartDate, err = queryDate(c, "start_date"); err != nil {
		return badDate(c, "start_date")
	}
	if q.EndDate, err = queryDate(c, "end_date"); err != nil {
		return badDate(c, "end_date")
	}
	q.Limit = c.QueryInt("limit", 20)
	q.Offset = c.QueryInt("offset", 0)

	out, err := h.list.List(c.UserContext(), GetCompanyID(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// openUpload valida y abre el archivo "file" del formulario multipart.
// Con ok=false la respuesta de error ya fue escrita y err es el resultado de escribirla.
func (h *RetailHandler) openUpload(c *fiber.Ctx) (file io.ReadCloser, ok bool, err error) {
	fh, ferr := c.FormFile("file")
	if ferr != nil {
		return nil, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "seleccione un archivo para subir"})
	}
	if fh.Size == 0 {
		return nil, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el archivo está vacío"})
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return nil, false, c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "archivo demasiado grande"})
	}
	f, ferr := fh.Open()
	if ferr != nil {
		return nil, false, c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: ferr.Error()})
	}
	return f, true, nil
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidSheet), errors.Is(err, domain.ErrSheetParse):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SHEET", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func queryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func badDate(c *fiber.Ctx, key string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: key + " debe tener formato YYYY-MM-DD"})
}
