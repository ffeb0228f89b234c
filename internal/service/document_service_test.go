package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/repository"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
)

type mockDocRepo struct {
	docs       map[string]*models.DocRecord
	upserted   *models.DocRecord
	setEnabled map[string]bool
	deleted    []string
	err        error
}

func newMockDocRepo() *mockDocRepo {
	return &mockDocRepo{docs: make(map[string]*models.DocRecord), setEnabled: make(map[string]bool)}
}

func (m *mockDocRepo) List(ctx context.Context, filter models.DocFilter) ([]models.DocRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.DocRecord
	for _, doc := range m.docs {
		out = append(out, *doc)
	}
	return out, nil
}

func (m *mockDocRepo) GetByFileID(ctx context.Context, fileID string) (*models.DocRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	doc, ok := m.docs[fileID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return doc, nil
}

func (m *mockDocRepo) Upsert(ctx context.Context, doc *models.DocRecord) error {
	if m.err != nil {
		return m.err
	}
	if doc.FileID == "" {
		doc.FileID = "generated-id"
	}
	m.upserted = doc
	m.docs[doc.FileID] = doc
	return nil
}

func (m *mockDocRepo) SetEnabled(ctx context.Context, fileID string, enabled bool) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.docs[fileID]; !ok {
		return repository.ErrNoSuchDocument
	}
	m.setEnabled[fileID] = enabled
	return nil
}

func (m *mockDocRepo) Delete(ctx context.Context, fileID string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, fileID)
	delete(m.docs, fileID)
	return nil
}

type mockRowStore struct {
	rows     map[string][]models.RawRow
	replaced map[string][]models.RawRow
}

func newMockRowStore() *mockRowStore {
	return &mockRowStore{rows: make(map[string][]models.RawRow), replaced: make(map[string][]models.RawRow)}
}

func (m *mockRowStore) ReplaceForFile(ctx context.Context, fileID string, rows []models.RawRow) error {
	m.replaced[fileID] = rows
	m.rows[fileID] = rows
	return nil
}

func (m *mockRowStore) ListByFile(ctx context.Context, fileID string) ([]models.RawRow, error) {
	return m.rows[fileID], nil
}

type mockCacheRepo struct {
	store        map[string][]byte
	invalidated  []string
	setKeys      []string
	failSet      bool
	failGetError error
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{store: make(map[string][]byte)}
}

func (m *mockCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	if m.failGetError != nil {
		return m.failGetError
	}
	if _, ok := m.store[key]; !ok {
		return appErrors.ErrCacheMiss
	}
	return nil
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.failSet {
		return errors.New("redis down")
	}
	m.setKeys = append(m.setKeys, key)
	m.store[key] = []byte("x")
	return nil
}

func (m *mockCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.invalidated = append(m.invalidated, pattern)
	m.store = make(map[string][]byte)
	return nil
}

func cacheWithRepo(repo CacheRepository) *CacheService {
	return NewCacheService(repo, time.Minute, nil, true)
}

func validCommit() dto.CommitDocumentRequest {
	return dto.CommitDocumentRequest{
		GuideID:    "gids-wiskunde",
		Vak:        "wiskunde",
		BeginWeek:  46,
		EindWeek:   5,
		Schooljaar: "2025/2026",
		Bestand:    "planner.docx",
	}
}

func TestCommitDocument(t *testing.T) {
	docs := newMockDocRepo()
	cacheRepo := newMockCacheRepo()
	svc := NewDocumentService(docs, newMockRowStore(), cacheWithRepo(cacheRepo), nil, nil)

	doc, err := svc.Commit(context.Background(), validCommit())
	require.NoError(t, err)
	assert.Equal(t, "wiskunde", doc.Vak)
	assert.True(t, doc.Enabled)
	require.NotNil(t, docs.upserted)
	assert.Equal(t, []string{"overview:*"}, cacheRepo.invalidated)
}

func TestCommitDocumentRejectsBadSchooljaar(t *testing.T) {
	svc := NewDocumentService(newMockDocRepo(), newMockRowStore(), cacheWithRepo(newMockCacheRepo()), nil, nil)

	req := validCommit()
	req.Schooljaar = "2025-2026"
	_, err := svc.Commit(context.Background(), req)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCommitDocumentRejectsUnsupportedFileType(t *testing.T) {
	docs := newMockDocRepo()
	svc := NewDocumentService(docs, newMockRowStore(), cacheWithRepo(newMockCacheRepo()), nil, nil)

	req := validCommit()
	req.Bestand = "planner.xlsx"
	_, err := svc.Commit(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, docs.upserted)
}

func TestCommitDocumentRejectsNonConsecutiveSchooljaar(t *testing.T) {
	svc := NewDocumentService(newMockDocRepo(), newMockRowStore(), cacheWithRepo(newMockCacheRepo()), nil, nil)

	req := validCommit()
	req.Schooljaar = "2025/2027"
	_, err := svc.Commit(context.Background(), req)
	require.Error(t, err)
}

func TestReplaceRowsInvalidatesCache(t *testing.T) {
	docs := newMockDocRepo()
	docs.docs["f1"] = &models.DocRecord{FileID: "f1"}
	rows := newMockRowStore()
	cacheRepo := newMockCacheRepo()
	svc := NewDocumentService(docs, rows, cacheWithRepo(cacheRepo), nil, nil)

	req := dto.ReplaceRowsRequest{Rows: []models.RawRow{{Week: weekPtr(46), Huiswerk: "som 1"}}}
	require.NoError(t, svc.ReplaceRows(context.Background(), "f1", req))
	assert.Len(t, rows.replaced["f1"], 1)
	assert.Equal(t, []string{"overview:*"}, cacheRepo.invalidated)
}

func TestReplaceRowsUnknownDocument(t *testing.T) {
	svc := NewDocumentService(newMockDocRepo(), newMockRowStore(), cacheWithRepo(newMockCacheRepo()), nil, nil)

	err := svc.ReplaceRows(context.Background(), "missing", dto.ReplaceRowsRequest{})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestSetEnabledUnknownDocument(t *testing.T) {
	svc := NewDocumentService(newMockDocRepo(), newMockRowStore(), cacheWithRepo(newMockCacheRepo()), nil, nil)

	err := svc.SetEnabled(context.Background(), "missing", false)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestDeleteDocument(t *testing.T) {
	docs := newMockDocRepo()
	docs.docs["f1"] = &models.DocRecord{FileID: "f1"}
	cacheRepo := newMockCacheRepo()
	svc := NewDocumentService(docs, newMockRowStore(), cacheWithRepo(cacheRepo), nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "f1"))
	assert.Equal(t, []string{"f1"}, docs.deleted)
	assert.Equal(t, []string{"overview:*"}, cacheRepo.invalidated)
}

func TestGetDocumentWithRows(t *testing.T) {
	docs := newMockDocRepo()
	docs.docs["f1"] = &models.DocRecord{FileID: "f1", Vak: "wiskunde"}
	rows := newMockRowStore()
	rows.rows["f1"] = []models.RawRow{{Week: weekPtr(46)}}
	svc := NewDocumentService(docs, rows, cacheWithRepo(newMockCacheRepo()), nil, nil)

	doc, docRows, err := svc.Get(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "wiskunde", doc.Vak)
	assert.Len(t, docRows, 1)
}
