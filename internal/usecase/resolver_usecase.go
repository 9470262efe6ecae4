package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/infrastructure/metrics"
)

// ReferenceResolver turns a movement's polymorphic reference into a
// human-readable record. Strictly informational: a missing target or a
// failing collaborator resolves to nil, never to a hard error, so display
// problems can never block movement creation or balance computation.
type ReferenceResolver struct {
	payroll PayrollDirectory
	supply  SupplyDirectory
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewReferenceResolver creates a new ReferenceResolver. Metrics are
// optional; pass nil to disable instrumentation.
func NewReferenceResolver(payroll PayrollDirectory, supply SupplyDirectory, m *metrics.Metrics, logger zerolog.Logger) *ReferenceResolver {
	return &ReferenceResolver{
		payroll: payroll,
		supply:  supply,
		metrics: m,
		logger:  logger,
	}
}

// Resolve looks up the record behind a reference. Returns (nil, nil) when
// the reference is absent, the target no longer exists, or the collaborator
// fails; collaborator failures are logged at warn level.
func (r *ReferenceResolver) Resolve(ctx context.Context, refKind domain.RefKind, refID int64) (*domain.Reference, error) {
	if refKind == "" || refID == 0 {
		return nil, nil
	}

	ref, err := r.lookup(ctx, refKind, refID)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("ref_kind", string(refKind)).
			Int64("ref_id", refID).
			Msg("reference resolution failed")

		if r.metrics != nil {
			r.metrics.ReferenceLookupFailures.WithLabelValues(string(refKind)).Inc()
		}

		return nil, nil
	}

	return ref, nil
}

// ResolveMovement resolves the reference carried by a movement, if any.
func (r *ReferenceResolver) ResolveMovement(ctx context.Context, m *domain.Movement) *domain.Reference {
	if !m.HasRef() {
		return nil
	}

	ref, _ := r.Resolve(ctx, m.RefKind, m.RefID)

	return ref
}

func (r *ReferenceResolver) lookup(ctx context.Context, refKind domain.RefKind, refID int64) (*domain.Reference, error) {
	switch refKind {
	case domain.RefPayroll:
		line, err := r.payroll.PayrollLine(ctx, refID)
		if err != nil {
			return nil, err
		}

		if line == nil {
			return nil, nil
		}

		return &domain.Reference{
			Kind:         domain.RefPayroll,
			ID:           line.ID,
			Counterparty: line.Employee,
			Detail:       line.Week,
			Amount:       line.Amount,
		}, nil

	case domain.RefSupply:
		purchase, err := r.supply.SupplyPurchase(ctx, refID)
		if err != nil {
			return nil, err
		}

		if purchase == nil {
			return nil, nil
		}

		return &domain.Reference{
			Kind:         domain.RefSupply,
			ID:           purchase.ID,
			Counterparty: purchase.Supplier,
			Detail:       purchase.Category,
			Amount:       purchase.Amount,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRefKind, refKind)
	}
}
