package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// DocumentHandler handles stored document metadata.
type DocumentHandler struct {
	documents ports.DocumentService
}

func NewDocumentHandler(documents ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

type uploadDocumentRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required"`
	FilePath string `json:"file_path" validate:"required"`
	FileSize int64  `json:"file_size" validate:"gte=0"`
	MimeType string `json:"mime_type"`
}

// List returns document records, optionally scoped to one client.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query  string  false  "Scope to one client"
// @Success      200  {object}  map[string]any
// @Router       /documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	result := h.documents.List(c.Request().Context(), c.QueryParam("client_id"))
	return resultJSON(c, http.StatusOK, result)
}

// Upload records file metadata after an upload to object storage.
//
// @Summary      Record an uploaded document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      uploadDocumentRequest  true  "Document metadata"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req uploadDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.documents.Upload(c.Request().Context(), ports.UploadDocumentInput{
		ClientID:   req.ClientID,
		Name:       req.Name,
		Type:       req.Type,
		FilePath:   req.FilePath,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		UploadedBy: cl.UserID,
	})
	if err != nil {
		return err
	}
	return resultJSON(c, http.StatusCreated, result)
}
