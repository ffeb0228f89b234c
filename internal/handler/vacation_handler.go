package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/response"
)

type vacationService interface {
	List(ctx context.Context, schoolYear string, activeOnly bool) ([]models.SchoolVacation, error)
	Replace(ctx context.Context, req dto.ReplaceVacationsRequest) ([]models.SchoolVacation, error)
}

// VacationHandler exposes the imported school-vacation list.
type VacationHandler struct {
	service vacationService
}

// NewVacationHandler builds a new handler.
func NewVacationHandler(service vacationService) *VacationHandler {
	return &VacationHandler{service: service}
}

// List returns stored vacations.
func (h *VacationHandler) List(c *gin.Context) {
	activeOnly := true
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "active must be a boolean"))
			return
		}
		activeOnly = parsed
	}
	vacations, err := h.service.List(c.Request.Context(), c.Query("school_year"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, vacations, nil)
}

// Replace overwrites the vacation list with a newly imported set.
func (h *VacationHandler) Replace(c *gin.Context) {
	var req dto.ReplaceVacationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid vacations payload"))
		return
	}
	vacations, err := h.service.Replace(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, vacations, nil)
}
