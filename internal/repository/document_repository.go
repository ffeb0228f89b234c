package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
)

// DocumentRepository persists committed study-guide documents.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository constructs a document repository.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const docColumns = "file_id, guide_id, vak, begin_week, eind_week, schooljaar, bestand, enabled, created_at, updated_at"

// List returns documents matching the filter, newest first.
func (r *DocumentRepository) List(ctx context.Context, filter models.DocFilter) ([]models.DocRecord, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Schooljaar != "" {
		where = append(where, fmt.Sprintf("schooljaar = $%d", len(args)+1))
		args = append(args, filter.Schooljaar)
	}
	if filter.Vak != "" {
		where = append(where, fmt.Sprintf("vak = $%d", len(args)+1))
		args = append(args, filter.Vak)
	}
	if filter.EnabledOnly {
		where = append(where, "enabled = TRUE")
	}

	query := fmt.Sprintf("SELECT %s FROM guide_documents WHERE %s ORDER BY created_at DESC",
		docColumns, strings.Join(where, " AND "))
	var docs []models.DocRecord
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// GetByFileID fetches a single document.
func (r *DocumentRepository) GetByFileID(ctx context.Context, fileID string) (*models.DocRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM guide_documents WHERE file_id = $1", docColumns)
	var doc models.DocRecord
	if err := r.db.GetContext(ctx, &doc, query, fileID); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upsert inserts a document or replaces it wholesale when the file id
// already exists. Re-ingestion overwrites, it never appends.
func (r *DocumentRepository) Upsert(ctx context.Context, doc *models.DocRecord) error {
	if doc.FileID == "" {
		doc.FileID = uuid.NewString()
	}
	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now
	query := `INSERT INTO guide_documents (file_id, guide_id, vak, begin_week, eind_week, schooljaar, bestand, enabled, created_at, updated_at)
VALUES (:file_id, :guide_id, :vak, :begin_week, :eind_week, :schooljaar, :bestand, :enabled, :created_at, :updated_at)
ON CONFLICT (file_id) DO UPDATE SET
	guide_id = EXCLUDED.guide_id,
	vak = EXCLUDED.vak,
	begin_week = EXCLUDED.begin_week,
	eind_week = EXCLUDED.eind_week,
	schooljaar = EXCLUDED.schooljaar,
	bestand = EXCLUDED.bestand,
	enabled = EXCLUDED.enabled,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

// SetEnabled toggles a document's participation in aggregation.
func (r *DocumentRepository) SetEnabled(ctx context.Context, fileID string, enabled bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE guide_documents SET enabled = $1, updated_at = $2 WHERE file_id = $3",
		enabled, time.Now().UTC(), fileID)
	if err != nil {
		return fmt.Errorf("set document enabled: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoSuchDocument
	}
	return nil
}

// Delete removes a document together with its rows.
func (r *DocumentRepository) Delete(ctx context.Context, fileID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete document: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM guide_rows WHERE file_id = $1", fileID); err != nil {
		return fmt.Errorf("delete document rows: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM guide_documents WHERE file_id = $1", fileID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return tx.Commit()
}
