package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
)

// ErrNoSuchDocument signals an operation against an unknown file id.
var ErrNoSuchDocument = errors.New("no such document")

// RowRepository persists the loosely-typed parsed rows per document. Rows
// are stored as JSONB payloads: their shape is owned by the parse backend,
// the planner only probes the fields it understands.
type RowRepository struct {
	db *sqlx.DB
}

// NewRowRepository constructs a row repository.
func NewRowRepository(db *sqlx.DB) *RowRepository {
	return &RowRepository{db: db}
}

type rowRecord struct {
	FileID   string `db:"file_id"`
	Position int    `db:"position"`
	Payload  []byte `db:"payload"`
}

// ReplaceForFile overwrites all rows of a document in one transaction.
// Replacement keeps re-ingestion idempotent: the previous contribution is
// gone before the new rows land.
func (r *RowRepository) ReplaceForFile(ctx context.Context, fileID string, rows []models.RawRow) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace rows: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM guide_rows WHERE file_id = $1", fileID); err != nil {
		return fmt.Errorf("clear rows for %s: %w", fileID, err)
	}
	for i, row := range rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshal row %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO guide_rows (file_id, position, payload) VALUES ($1, $2, $3)",
			fileID, i, payload); err != nil {
			return fmt.Errorf("insert row %d for %s: %w", i, fileID, err)
		}
	}
	return tx.Commit()
}

// ListByFile returns a document's rows in their original order.
func (r *RowRepository) ListByFile(ctx context.Context, fileID string) ([]models.RawRow, error) {
	var records []rowRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT file_id, position, payload FROM guide_rows WHERE file_id = $1 ORDER BY position ASC", fileID); err != nil {
		return nil, fmt.Errorf("list rows for %s: %w", fileID, err)
	}
	return decodeRows(records)
}

// ListAll returns every stored row keyed by file id, ordered per document.
func (r *RowRepository) ListAll(ctx context.Context) (map[string][]models.RawRow, error) {
	var records []rowRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT file_id, position, payload FROM guide_rows ORDER BY file_id ASC, position ASC"); err != nil {
		return nil, fmt.Errorf("list all rows: %w", err)
	}

	byFile := make(map[string][]models.RawRow)
	for _, record := range records {
		var row models.RawRow
		if err := json.Unmarshal(record.Payload, &row); err != nil {
			return nil, fmt.Errorf("decode row %d of %s: %w", record.Position, record.FileID, err)
		}
		byFile[record.FileID] = append(byFile[record.FileID], row)
	}
	return byFile, nil
}

func decodeRows(records []rowRecord) ([]models.RawRow, error) {
	rows := make([]models.RawRow, 0, len(records))
	for _, record := range records {
		var row models.RawRow
		if err := json.Unmarshal(record.Payload, &row); err != nil {
			return nil, fmt.Errorf("decode row %d of %s: %w", record.Position, record.FileID, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
