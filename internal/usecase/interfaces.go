package usecase

import (
	"context"
	"time"

	"github.com/ruival/obracap/internal/domain"
)

// MovementRepository defines data access for ledger movements. The store is
// append-oriented: movements are inserted once and never updated or deleted.
type MovementRepository interface {
	Insert(ctx context.Context, movement *domain.Movement) error
	InsertTx(ctx context.Context, tx Transaction, movement *domain.Movement) error
	GetByID(ctx context.Context, id string) (*domain.Movement, error)
	// Query returns movements matching the filter. Result order is
	// unspecified; ordering guarantees belong to the balance fold.
	Query(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error)
	QueryTx(ctx context.Context, tx Transaction, filter domain.Filter) ([]*domain.Movement, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
	// LockAccount serializes balance-affecting writes for one account. The
	// lock is scoped to the transaction and released on commit or rollback.
	LockAccount(ctx context.Context, tx Transaction, accountID string) error
}

// ProjectDirectory resolves project display names. The ledger never owns
// project data. A missing project resolves to ("", nil).
type ProjectDirectory interface {
	ProjectName(ctx context.Context, projectID string) (string, error)
}

// PayrollDirectory looks up payroll lines by id. A missing line resolves to
// (nil, nil); errors are reserved for infrastructure failures.
type PayrollDirectory interface {
	PayrollLine(ctx context.Context, id int64) (*domain.PayrollLine, error)
}

// SupplyDirectory looks up supply purchases by id. Same conventions as
// PayrollDirectory.
type SupplyDirectory interface {
	SupplyPurchase(ctx context.Context, id int64) (*domain.SupplyPurchase, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation when it fails with a retryable error, for
// example a serialization failure between two concurrent writers.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// EventPublisher publishes domain events to external consumers. Publishing is
// best-effort from the ledger's point of view; failures never undo a write.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}
