package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/planner"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
)

type documentLister interface {
	List(ctx context.Context, filter models.DocFilter) ([]models.DocRecord, error)
}

type rowLister interface {
	ListAll(ctx context.Context) (map[string][]models.RawRow, error)
}

type vacationLister interface {
	List(ctx context.Context, schoolYear string, activeOnly bool) ([]models.SchoolVacation, error)
}

// OverviewService rebuilds the aggregated week table from the stored
// inputs. Every mutation elsewhere invalidates the cached variants, so a
// read either serves a complete cached table or rebuilds one from scratch;
// partial state is never observable.
type OverviewService struct {
	docs      documentLister
	rows      rowLister
	vacations vacationLister
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewOverviewService constructs the service.
func NewOverviewService(docs documentLister, rows rowLister, vacations vacationLister, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *OverviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverviewService{docs: docs, rows: rows, vacations: vacations, cache: cache, metrics: metrics, logger: logger}
}

// Overview returns the week-by-week table, filtered by school year and
// subject when requested.
func (s *OverviewService) Overview(ctx context.Context, req dto.OverviewRequest) (*dto.OverviewResponse, error) {
	key := "overview:" + req.Schooljaar + ":" + req.Vak

	var cached dto.OverviewResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	response, err := s.rebuild(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, response)
	return response, nil
}

func (s *OverviewService) rebuild(ctx context.Context, req dto.OverviewRequest) (*dto.OverviewResponse, error) {
	start := time.Now()

	docs, err := s.docs.List(ctx, models.DocFilter{Schooljaar: req.Schooljaar, Vak: req.Vak})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load documents")
	}
	rows, err := s.rows.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load rows")
	}
	vacations, err := s.vacations.List(ctx, "", true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load vacations")
	}

	result := planner.Aggregate(planner.Input{Docs: docs, Rows: rows, Vacations: vacations})

	response := &dto.OverviewResponse{Weeks: make([]dto.OverviewWeek, 0, len(result.Weeks))}
	subjectSet := make(map[string]struct{})
	for _, week := range result.Weeks {
		entry := dto.OverviewWeek{
			Week:      week,
			Vacations: result.VacationWeeks[week.ID],
			Subjects:  make(map[string]models.SubjectWeekData),
		}
		for vak, data := range result.ByWeek[week.ID] {
			entry.Subjects[vak] = *data
			subjectSet[vak] = struct{}{}
		}
		response.Weeks = append(response.Weeks, entry)
	}

	response.Subjects = make([]string, 0, len(subjectSet))
	for vak := range subjectSet {
		response.Subjects = append(response.Subjects, vak)
	}
	sort.Strings(response.Subjects)

	duration := time.Since(start)
	if s.metrics != nil {
		s.metrics.ObserveRebuild(duration)
	}
	s.logger.Debug("overview rebuilt",
		zap.Int("documents", len(docs)),
		zap.Int("weeks", len(response.Weeks)),
		zap.Duration("duration", duration))
	return response, nil
}
