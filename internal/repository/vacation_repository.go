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

// VacationRepository persists imported school vacations.
type VacationRepository struct {
	db *sqlx.DB
}

// NewVacationRepository constructs a vacation repository.
func NewVacationRepository(db *sqlx.DB) *VacationRepository {
	return &VacationRepository{db: db}
}

const vacationColumns = "id, name, region, start_date, end_date, school_year, active, created_at, updated_at"

// List returns stored vacations, optionally limited to a school year or to
// active entries, ordered by start date.
func (r *VacationRepository) List(ctx context.Context, schoolYear string, activeOnly bool) ([]models.SchoolVacation, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if schoolYear != "" {
		where = append(where, fmt.Sprintf("school_year = $%d", len(args)+1))
		args = append(args, schoolYear)
	}
	if activeOnly {
		where = append(where, "active = TRUE")
	}

	query := fmt.Sprintf("SELECT %s FROM school_vacations WHERE %s ORDER BY start_date ASC",
		vacationColumns, strings.Join(where, " AND "))
	var vacations []models.SchoolVacation
	if err := r.db.SelectContext(ctx, &vacations, query, args...); err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	return vacations, nil
}

// Replace overwrites the full vacation list in one transaction. The import
// dialog always delivers a complete set.
func (r *VacationRepository) Replace(ctx context.Context, vacations []models.SchoolVacation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace vacations: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM school_vacations"); err != nil {
		return fmt.Errorf("clear vacations: %w", err)
	}

	now := time.Now().UTC()
	const query = `INSERT INTO school_vacations (id, name, region, start_date, end_date, school_year, active, created_at, updated_at)
VALUES (:id, :name, :region, :start_date, :end_date, :school_year, :active, :created_at, :updated_at)`
	for i := range vacations {
		if vacations[i].ID == "" {
			vacations[i].ID = uuid.NewString()
		}
		if vacations[i].CreatedAt.IsZero() {
			vacations[i].CreatedAt = now
		}
		vacations[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, query, vacations[i]); err != nil {
			return fmt.Errorf("insert vacation %q: %w", vacations[i].Name, err)
		}
	}
	return tx.Commit()
}
