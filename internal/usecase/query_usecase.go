package usecase

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/infrastructure/metrics"
)

// QueryUseCase is the read side of the ledger: filtered movement lists and
// summaries assembled from the store and the balance fold.
type QueryUseCase struct {
	movementRepo MovementRepository
	projects     ProjectDirectory
	cache        Cache
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewQueryUseCase creates a new QueryUseCase. Projects, cache and metrics
// are optional; pass nil to disable project-name resolution, caching or
// instrumentation.
func NewQueryUseCase(
	movementRepo MovementRepository,
	projects ProjectDirectory,
	cache Cache,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *QueryUseCase {
	return &QueryUseCase{
		movementRepo: movementRepo,
		projects:     projects,
		cache:        cache,
		metrics:      m,
		logger:       logger,
	}
}

// ListMovements returns movements matching the filter in presentation order:
// most recent first (date descending, id descending).
func (uc *QueryUseCase) ListMovements(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error) {
	movements, err := uc.movementRepo.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[j].Less(movements[i])
	})

	return movements, nil
}

// GetMovement retrieves a single movement by id.
func (uc *QueryUseCase) GetMovement(ctx context.Context, id string) (*domain.Movement, error) {
	return uc.movementRepo.GetByID(ctx, id)
}

// CountMovements counts movements matching the filter.
func (uc *QueryUseCase) CountMovements(ctx context.Context, filter domain.Filter) (int64, error) {
	return uc.movementRepo.Count(ctx, filter)
}

// AccountSummary folds the full history of one account. Results are cached
// briefly; the registrar invalidates the cache on every write to the account.
func (uc *QueryUseCase) AccountSummary(ctx context.Context, accountID string) (domain.Summary, error) {
	key := summaryCacheKey(accountID)

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil {
			var cached domain.Summary
			if err := json.Unmarshal(data, &cached); err == nil {
				if uc.metrics != nil {
					uc.metrics.SummaryCacheHits.Inc()
				}
				return cached, nil
			}
		}
	}

	if uc.metrics != nil {
		uc.metrics.SummaryCacheMisses.Inc()
	}

	movements, err := uc.movementRepo.Query(ctx, domain.Filter{AccountID: accountID})
	if err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summarize(movements)

	if uc.cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := uc.cache.Set(ctx, key, data, SummaryCacheTTL); err != nil {
				uc.logger.Debug().Err(err).Str("account_id", accountID).Msg("failed to cache summary")
			}
		}
	}

	return summary, nil
}

// FilteredSummary folds an arbitrary movement set, not scoped to a single
// account. Used for portfolio-wide reporting.
func (uc *QueryUseCase) FilteredSummary(ctx context.Context, filter domain.Filter) (domain.Summary, error) {
	movements, err := uc.movementRepo.Query(ctx, filter)
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summarize(movements), nil
}

// CapitalByProject folds movements matching the filter into per-project
// capital summaries, with display names resolved through the project
// collaborator. Groups come back sorted by project id so output is stable.
func (uc *QueryUseCase) CapitalByProject(ctx context.Context, filter domain.Filter) ([]domain.ProjectSummary, error) {
	movements, err := uc.movementRepo.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	groups := domain.SummarizeByProject(movements)

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].ProjectID < groups[j].ProjectID
	})

	if uc.projects == nil {
		return groups, nil
	}

	for i := range groups {
		if groups[i].ProjectID == "" {
			continue
		}

		name, err := uc.projects.ProjectName(ctx, groups[i].ProjectID)
		if err != nil {
			uc.logger.Warn().Err(err).Str("project_id", groups[i].ProjectID).Msg("failed to resolve project name")
			continue
		}

		if name == "" {
			name = groups[i].ProjectID
		}

		groups[i].ProjectName = name
	}

	return groups, nil
}
