package repository

import (
	"context"
	"encoding/json"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
)

func TestRowRepositoryReplaceForFile(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRowRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM guide_rows WHERE file_id").
		WithArgs("f1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO guide_rows").
		WithArgs("f1", 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO guide_rows").
		WithArgs("f1", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	week := 46
	rows := []models.RawRow{
		{Week: &week, Onderwerp: "hoofdstuk 1"},
		{WeekLabel: "herfstvakantie"},
	}
	require.NoError(t, repo.ReplaceForFile(context.Background(), "f1", rows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRowRepositoryListByFileKeepsOrder(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRowRepository(db)

	first, _ := json.Marshal(models.RawRow{Onderwerp: "eerste"})
	second, _ := json.Marshal(models.RawRow{Onderwerp: "tweede"})
	mock.ExpectQuery("SELECT file_id, position, payload FROM guide_rows WHERE file_id").
		WithArgs("f1").
		WillReturnRows(sqlmock.NewRows([]string{"file_id", "position", "payload"}).
			AddRow("f1", 0, first).
			AddRow("f1", 1, second))

	rows, err := repo.ListByFile(context.Background(), "f1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "eerste", rows[0].Onderwerp)
	assert.Equal(t, "tweede", rows[1].Onderwerp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRowRepositoryListAllGroupsByFile(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRowRepository(db)

	payload, _ := json.Marshal(models.RawRow{Huiswerk: "opgave 1"})
	mock.ExpectQuery("SELECT file_id, position, payload FROM guide_rows ORDER BY").
		WillReturnRows(sqlmock.NewRows([]string{"file_id", "position", "payload"}).
			AddRow("f1", 0, payload).
			AddRow("f2", 0, payload))

	byFile, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, byFile, 2)
	assert.Len(t, byFile["f1"], 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
