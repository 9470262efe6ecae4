package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// SummaryCacheTTL is how long account summaries are cached between writes
	SummaryCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// summaryCacheKey is the cache key for one account's summary. The registrar
// deletes it after every successful write to that account.
func summaryCacheKey(accountID string) string {
	return "summary:" + accountID
}
