package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/response"
)

type overviewService interface {
	Overview(ctx context.Context, req dto.OverviewRequest) (*dto.OverviewResponse, error)
}

// OverviewHandler serves the aggregated week-by-week table.
type OverviewHandler struct {
	service overviewService
}

// NewOverviewHandler builds a new handler.
func NewOverviewHandler(service overviewService) *OverviewHandler {
	return &OverviewHandler{service: service}
}

// Get returns the week overview, optionally narrowed by school year and
// subject.
func (h *OverviewHandler) Get(c *gin.Context) {
	var req dto.OverviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	overview, err := h.service.Overview(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}
