package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/service"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/response"
)

type exportService interface {
	Export(ctx context.Context, req dto.OverviewRequest, format string) (*service.ExportResult, error)
}

// ExportHandler streams the week overview as CSV or PDF.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Download renders and returns the overview export.
func (h *ExportHandler) Download(c *gin.Context) {
	var req dto.OverviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	result, err := h.service.Export(c.Request.Context(), req, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
