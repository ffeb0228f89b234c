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

type documentService interface {
	List(ctx context.Context, filter models.DocFilter) ([]models.DocRecord, error)
	Get(ctx context.Context, fileID string) (*models.DocRecord, []models.RawRow, error)
	Commit(ctx context.Context, req dto.CommitDocumentRequest) (*models.DocRecord, error)
	ReplaceRows(ctx context.Context, fileID string, req dto.ReplaceRowsRequest) error
	SetEnabled(ctx context.Context, fileID string, enabled bool) error
	Delete(ctx context.Context, fileID string) error
}

// DocumentHandler exposes study-guide document endpoints.
type DocumentHandler struct {
	service documentService
}

// NewDocumentHandler builds a new handler.
func NewDocumentHandler(service documentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List returns committed documents, optionally filtered by school year,
// subject or enabled state.
func (h *DocumentHandler) List(c *gin.Context) {
	filter := models.DocFilter{
		Schooljaar: c.Query("schooljaar"),
		Vak:        c.Query("vak"),
	}
	if raw := c.Query("enabled"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "enabled must be a boolean"))
			return
		}
		filter.EnabledOnly = enabled
	}
	// Disabled documents are management state. Anonymous readers only see
	// what feeds the overview; authenticated users see everything.
	if claimsFromContext(c) == nil {
		filter.EnabledOnly = true
	}

	docs, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, docs, nil)
}

// Get returns one document together with its stored rows.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, rows, err := h.service.Get(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"document": doc, "rows": rows}, nil)
}

// Commit registers a parsed document.
func (h *DocumentHandler) Commit(c *gin.Context) {
	var req dto.CommitDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid document payload"))
		return
	}
	doc, err := h.service.Commit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// ReplaceRows overwrites the parsed rows of a document.
func (h *DocumentHandler) ReplaceRows(c *gin.Context) {
	var req dto.ReplaceRowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid rows payload"))
		return
	}
	if err := h.service.ReplaceRows(c.Request.Context(), c.Param("fileId"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetEnabled toggles whether a document participates in the overview.
func (h *DocumentHandler) SetEnabled(c *gin.Context) {
	var req dto.SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.SetEnabled(c.Request.Context(), c.Param("fileId"), req.Enabled); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete removes a document and its rows.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("fileId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
