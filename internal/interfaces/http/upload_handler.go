package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/application/usecase"
	"github.com/jhoicas/Precios-api/internal/domain"
	"github.com/jhoicas/Precios-api/internal/infrastructure/parser"
)

// UploadHandler maneja la carga de listas de precios (archivo .xlsx o texto pegado).
type UploadHandler struct {
	ingest *usecase.IngestUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(ingest *usecase.IngestUseCase) *UploadHandler {
	return &UploadHandler{ingest: ingest}
}

// Upload godoc
// @Summary      Cargar una lista de precios
// @Description  Acepta un archivo .xlsx o un bloque de texto separado por tabs; exactamente uno de los dos.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        supplier_id  formData  string  true   "ID del proveedor"
// @Param        file         formData  file    false  "Lista de precios .xlsx"
// @Param        text_data    formData  string  false  "Lista de precios en texto tabulado"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	supplierID := strings.TrimSpace(c.FormValue("supplier_id"))
	if supplierID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier_id is required"})
	}

	fileHeader, fileErr := c.FormFile("file")
	textData := c.FormValue("text_data")

	var (
		report *parser.BatchReport
		source string
	)
	switch {
	case fileErr == nil && fileHeader != nil:
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE_TYPE", Message: "Only .xlsx files are allowed."})
		}
		f, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error: " + err.Error()})
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error: " + err.Error()})
		}
		report, err = parser.ParseXLSX(content)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownLayout) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_LAYOUT", Message: "Could not identify required columns in Excel file"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error: " + err.Error()})
		}
		source = "xlsx"
	case textData != "":
		report = parser.ParseText(textData)
		source = "text"
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_INPUT", Message: "No file or text data provided."})
	}

	out, err := h.ingest.Ingest(c.UserContext(), supplierID, source, report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error: " + err.Error()})
	}
	return c.JSON(out)
}
