package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/infrastructure/metrics"
)

// RegistrarUseCase is the write path of the ledger. Every balance-affecting
// write runs read-compute-insert inside a single transaction, with the
// account's write lock held, so two concurrent writers cannot both derive a
// new balance from the same stale read.
type RegistrarUseCase struct {
	txManager    TransactionManager
	movementRepo MovementRepository
	idGen        IDGenerator
	retrier      Retrier
	cache        Cache
	publisher    EventPublisher
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewRegistrarUseCase creates a new RegistrarUseCase. Cache, publisher,
// retrier and metrics are optional; pass nil to disable them.
func NewRegistrarUseCase(
	txManager TransactionManager,
	movementRepo MovementRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *RegistrarUseCase {
	return &RegistrarUseCase{
		txManager:    txManager,
		movementRepo: movementRepo,
		idGen:        idGen,
		retrier:      retrier,
		cache:        cache,
		publisher:    publisher,
		metrics:      m,
		logger:       logger,
	}
}

// RecordInitialFundingInput represents input for seeding an account.
type RecordInitialFundingInput struct {
	AccountID   string
	ProjectID   string
	Date        domain.Date
	Amount      decimal.Decimal
	Description string
}

// RecordInitialFunding creates the income movement that seeds an account.
// BalanceAfter equals the amount: the account is assumed fresh, and the
// ledger intentionally does not verify that assumption. Calling it twice
// produces two income movements, which the balance fold absorbs like any
// other income.
func (uc *RegistrarUseCase) RecordInitialFunding(ctx context.Context, input RecordInitialFundingInput) (*domain.Movement, error) {
	if input.Amount.IsZero() {
		return nil, uc.fail(domain.ErrMissingAmount)
	}

	movement := &domain.Movement{
		ID:           uc.idGen.Generate(),
		AccountID:    input.AccountID,
		ProjectID:    input.ProjectID,
		Kind:         domain.KindIncome,
		Source:       domain.SourceManual,
		Date:         input.Date,
		Amount:       input.Amount.Abs(),
		Description:  input.Description,
		BalanceAfter: input.Amount.Abs(),
		CreatedAt:    time.Now().UTC(),
	}

	if err := movement.Validate(); err != nil {
		return nil, uc.fail(err)
	}

	if err := uc.movementRepo.Insert(ctx, movement); err != nil {
		return nil, uc.fail(err)
	}

	uc.afterWrite(ctx, movement)

	return movement, nil
}

// RecordExpenseInput represents input for drawing an expense against an account.
type RecordExpenseInput struct {
	AccountID   string
	ProjectID   string
	Amount      decimal.Decimal
	Date        domain.Date
	Description string
	Source      domain.Source
	RefKind     domain.RefKind
	RefID       int64
}

// RecordExpense draws an expense against the account's running balance.
// Negative balances are permitted: a project may spend ahead of recorded
// income.
func (uc *RegistrarUseCase) RecordExpense(ctx context.Context, input RecordExpenseInput) (*domain.Movement, error) {
	if input.Amount.IsZero() {
		return nil, uc.fail(domain.ErrMissingAmount)
	}

	movement := &domain.Movement{
		ID:          uc.idGen.Generate(),
		AccountID:   input.AccountID,
		ProjectID:   input.ProjectID,
		Kind:        domain.KindExpense,
		Source:      input.Source,
		RefKind:     input.RefKind,
		RefID:       input.RefID,
		Date:        input.Date,
		Amount:      input.Amount.Abs(),
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := movement.Validate(); err != nil {
		return nil, uc.fail(err)
	}

	if err := uc.recordWithBalance(ctx, movement); err != nil {
		return nil, uc.fail(err)
	}

	uc.afterWrite(ctx, movement)

	return movement, nil
}

// RecordMovementInput represents input for a manually supplied movement.
type RecordMovementInput struct {
	AccountID   string
	ProjectID   string
	Kind        domain.Kind
	Source      domain.Source
	Amount      decimal.Decimal
	Date        domain.Date
	Description string
	RefKind     domain.RefKind
	RefID       int64
}

// RecordManualMovement creates an income or adjustment movement supplied
// directly by the caller. The balance effect is the movement's signed amount
// added to the current balance, computed under the same per-account lock as
// expenses. An expense kind is accepted too and behaves exactly like
// RecordExpense.
func (uc *RegistrarUseCase) RecordManualMovement(ctx context.Context, input RecordMovementInput) (*domain.Movement, error) {
	if input.Amount.IsZero() {
		return nil, uc.fail(domain.ErrMissingAmount)
	}

	amount := input.Amount
	if input.Kind != domain.KindAdjustment {
		amount = amount.Abs()
	}

	movement := &domain.Movement{
		ID:          uc.idGen.Generate(),
		AccountID:   input.AccountID,
		ProjectID:   input.ProjectID,
		Kind:        input.Kind,
		Source:      input.Source,
		RefKind:     input.RefKind,
		RefID:       input.RefID,
		Date:        input.Date,
		Amount:      amount,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := movement.Validate(); err != nil {
		return nil, uc.fail(err)
	}

	if err := uc.recordWithBalance(ctx, movement); err != nil {
		return nil, uc.fail(err)
	}

	uc.afterWrite(ctx, movement)

	return movement, nil
}

// recordWithBalance computes the movement's BalanceAfter from the account's
// current history and inserts it, all inside one transaction with the
// account lock held. Retried on serialization failures when a retrier is
// configured.
func (uc *RegistrarUseCase) recordWithBalance(ctx context.Context, movement *domain.Movement) error {
	if uc.metrics != nil {
		timer := prometheus.NewTimer(uc.metrics.RecordDuration)
		defer timer.ObserveDuration()
	}

	op := func() error {
		txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
		defer cancel()

		tx, err := uc.txManager.Begin(txCtx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(txCtx) }()

		if err := uc.movementRepo.LockAccount(txCtx, tx, movement.AccountID); err != nil {
			return err
		}

		history, err := uc.movementRepo.QueryTx(txCtx, tx, domain.Filter{AccountID: movement.AccountID})
		if err != nil {
			return err
		}

		summary := domain.Summarize(history)
		movement.BalanceAfter = summary.CurrentBalance.Add(movement.SignedAmount())

		if err := uc.movementRepo.InsertTx(txCtx, tx, movement); err != nil {
			return err
		}

		return tx.Commit(txCtx)
	}

	if uc.retrier != nil {
		return uc.retrier.Retry(ctx, op)
	}

	return op()
}

// fail counts the error by type before returning it unchanged.
func (uc *RegistrarUseCase) fail(err error) error {
	if uc.metrics != nil {
		uc.metrics.MovementErrors.WithLabelValues(errorType(err)).Inc()
	}
	return err
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingAmount):
		return "missing_amount"
	case errors.Is(err, domain.ErrInvalidKind):
		return "invalid_kind"
	case errors.Is(err, domain.ErrInvalidSource):
		return "invalid_source"
	case errors.Is(err, domain.ErrInvalidRefKind):
		return "invalid_ref_kind"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return "storage"
	}
}

// afterWrite invalidates the cached summary for the account and emits the
// recorded event. Both are fail-soft.
func (uc *RegistrarUseCase) afterWrite(ctx context.Context, movement *domain.Movement) {
	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, summaryCacheKey(movement.AccountID)); err != nil {
			uc.logger.Warn().Err(err).Str("account_id", movement.AccountID).Msg("failed to invalidate summary cache")
		}
	}

	if uc.publisher != nil {
		event := domain.MovementRecordedEvent{
			MovementID:   movement.ID,
			AccountID:    movement.AccountID,
			ProjectID:    movement.ProjectID,
			Kind:         string(movement.Kind),
			Source:       string(movement.Source),
			Amount:       movement.Amount.String(),
			BalanceAfter: movement.BalanceAfter.String(),
			Date:         movement.Date.String(),
		}
		if err := uc.publisher.Publish(ctx, domain.EventTypeMovementRecorded, event); err != nil {
			uc.logger.Warn().Err(err).Str("movement_id", movement.ID).Msg("failed to publish movement event")
		}
	}

	if uc.metrics != nil {
		uc.metrics.MovementsRecorded.WithLabelValues(string(movement.Kind), string(movement.Source)).Inc()
		balance, _ := movement.BalanceAfter.Float64()
		uc.metrics.AccountBalance.WithLabelValues(movement.AccountID).Set(balance)
	}

	uc.logger.Info().
		Str("movement_id", movement.ID).
		Str("account_id", movement.AccountID).
		Str("kind", string(movement.Kind)).
		Str("amount", movement.Amount.String()).
		Str("balance_after", movement.BalanceAfter.String()).
		Msg("movement recorded")
}
