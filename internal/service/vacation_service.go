package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
)

type vacationRepository interface {
	List(ctx context.Context, schoolYear string, activeOnly bool) ([]models.SchoolVacation, error)
	Replace(ctx context.Context, vacations []models.SchoolVacation) error
}

// VacationService manages the imported school-vacation list. Vacations are
// consumed read-only by the planner; this service only stores what the
// import dialog delivers.
type VacationService struct {
	repo      vacationRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewVacationService constructs the service.
func NewVacationService(repo vacationRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *VacationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VacationService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns stored vacations.
func (s *VacationService) List(ctx context.Context, schoolYear string, activeOnly bool) ([]models.SchoolVacation, error) {
	vacations, err := s.repo.List(ctx, schoolYear, activeOnly)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list vacations")
	}
	return vacations, nil
}

// Replace overwrites the vacation list with a freshly imported set.
func (s *VacationService) Replace(ctx context.Context, req dto.ReplaceVacationsRequest) ([]models.SchoolVacation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	vacations := make([]models.SchoolVacation, 0, len(req.Vacations))
	for _, payload := range req.Vacations {
		start, err := time.Parse("2006-01-02", payload.StartDate)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid start_date for "+payload.Name)
		}
		end, err := time.Parse("2006-01-02", payload.EndDate)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid end_date for "+payload.Name)
		}
		if end.Before(start) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "end_date before start_date for "+payload.Name)
		}
		vacations = append(vacations, models.SchoolVacation{
			Name:       payload.Name,
			Region:     payload.Region,
			StartDate:  start,
			EndDate:    end,
			SchoolYear: payload.SchoolYear,
			Active:     payload.Active,
		})
	}

	if err := s.repo.Replace(ctx, vacations); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace vacations")
	}

	s.cache.Invalidate(ctx, overviewCachePattern)
	s.logger.Info("vacations replaced", zap.Int("count", len(vacations)))
	return vacations, nil
}
