package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/planner"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/repository"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
)

// overviewCachePattern matches every cached overview variant. Any document
// or vacation mutation invalidates all of them: the table is rebuilt from
// scratch on the next read, never patched.
const overviewCachePattern = "overview:*"

type documentRepository interface {
	List(ctx context.Context, filter models.DocFilter) ([]models.DocRecord, error)
	GetByFileID(ctx context.Context, fileID string) (*models.DocRecord, error)
	Upsert(ctx context.Context, doc *models.DocRecord) error
	SetEnabled(ctx context.Context, fileID string, enabled bool) error
	Delete(ctx context.Context, fileID string) error
}

type rowWriter interface {
	ReplaceForFile(ctx context.Context, fileID string, rows []models.RawRow) error
	ListByFile(ctx context.Context, fileID string) ([]models.RawRow, error)
}

// DocumentService manages committed study-guide documents and their rows.
type DocumentService struct {
	docs      documentRepository
	rows      rowWriter
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDocumentService constructs the service.
func NewDocumentService(docs documentRepository, rows rowWriter, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *DocumentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &DocumentService{docs: docs, rows: rows, cache: cache, validator: validate, logger: logger}
	svc.validator.RegisterValidation("schooljaar", func(fl validator.FieldLevel) bool {
		_, ok := planner.ParseSchooljaar(fl.Field().String())
		return ok
	})
	return svc
}

// List returns documents matching the filter.
func (s *DocumentService) List(ctx context.Context, filter models.DocFilter) ([]models.DocRecord, error) {
	docs, err := s.docs.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list documents")
	}
	return docs, nil
}

// Get returns one document with its rows.
func (s *DocumentService) Get(ctx context.Context, fileID string) (*models.DocRecord, []models.RawRow, error) {
	doc, err := s.docs.GetByFileID(ctx, fileID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get document")
	}
	rows, err := s.rows.ListByFile(ctx, fileID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load rows")
	}
	return doc, rows, nil
}

// Commit registers a parsed document. A commit for an existing file id
// replaces the record wholesale.
func (s *DocumentService) Commit(ctx context.Context, req dto.CommitDocumentRequest) (*models.DocRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	doc := &models.DocRecord{
		GuideID:    req.GuideID,
		Vak:        req.Vak,
		BeginWeek:  req.BeginWeek,
		EindWeek:   req.EindWeek,
		Schooljaar: req.Schooljaar,
		Bestand:    req.Bestand,
		Enabled:    true,
	}
	if !doc.IsDocx() && !doc.IsPDF() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "bestand must be a .docx or .pdf file")
	}
	if err := s.docs.Upsert(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit document")
	}

	s.cache.Invalidate(ctx, overviewCachePattern)
	s.logger.Info("document committed",
		zap.String("file_id", doc.FileID),
		zap.String("vak", doc.Vak),
		zap.String("schooljaar", doc.Schooljaar))
	return doc, nil
}

// ReplaceRows overwrites a document's parsed rows wholesale.
func (s *DocumentService) ReplaceRows(ctx context.Context, fileID string, req dto.ReplaceRowsRequest) error {
	if _, err := s.docs.GetByFileID(ctx, fileID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load document")
	}
	if err := s.rows.ReplaceForFile(ctx, fileID, req.Rows); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace rows")
	}

	s.cache.Invalidate(ctx, overviewCachePattern)
	s.logger.Info("document rows replaced", zap.String("file_id", fileID), zap.Int("rows", len(req.Rows)))
	return nil
}

// SetEnabled toggles a document's participation in the overview.
func (s *DocumentService) SetEnabled(ctx context.Context, fileID string, enabled bool) error {
	if err := s.docs.SetEnabled(ctx, fileID, enabled); err != nil {
		if errors.Is(err, repository.ErrNoSuchDocument) {
			return appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle document")
	}
	s.cache.Invalidate(ctx, overviewCachePattern)
	return nil
}

// Delete removes a document and its rows.
func (s *DocumentService) Delete(ctx context.Context, fileID string) error {
	if err := s.docs.Delete(ctx, fileID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete document")
	}
	s.cache.Invalidate(ctx, overviewCachePattern)
	s.logger.Info("document deleted", zap.String("file_id", fileID))
	return nil
}
