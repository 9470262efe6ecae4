// Package memory provides an in-memory movement store used for development
// and tests. It implements the same repository and transaction contracts as
// the PostgreSQL adapter so use cases run against either unchanged.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/usecase"
)

// Store is an in-memory implementation of usecase.MovementRepository and
// usecase.TransactionManager. A RWMutex guards the movement map; per-account
// mutexes back LockAccount so concurrent registrar writes to the same
// account serialize the same way the advisory lock does in PostgreSQL.
type Store struct {
	mu        sync.RWMutex
	movements map[string]*domain.Movement

	lockMu       sync.Mutex
	accountLocks map[string]*sync.Mutex
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{
		movements:    make(map[string]*domain.Movement),
		accountLocks: make(map[string]*sync.Mutex),
	}
}

// Reset clears all movements. Test helper.
func (s *Store) Reset() {
	s.mu.Lock()
	s.movements = make(map[string]*domain.Movement)
	s.mu.Unlock()
}

// Insert stores a copy of the movement.
func (s *Store) Insert(_ context.Context, movement *domain.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := *movement
	s.movements[m.ID] = &m

	return nil
}

// InsertTx stores a copy of the movement inside a transaction. The memory
// store has no real transactions, so this is Insert with the lock held by
// the surrounding Tx.
func (s *Store) InsertTx(ctx context.Context, _ usecase.Transaction, movement *domain.Movement) error {
	return s.Insert(ctx, movement)
}

// GetByID retrieves a movement by id.
func (s *Store) GetByID(_ context.Context, id string) (*domain.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movements[id]
	if !ok {
		return nil, domain.ErrMovementNotFound
	}

	out := *m

	return &out, nil
}

// Query returns copies of all movements matching the filter, newest first.
func (s *Store) Query(_ context.Context, filter domain.Filter) ([]*domain.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Movement
	for _, m := range s.movements {
		if !filter.Matches(m) {
			continue
		}

		c := *m
		out = append(out, &c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[j].Less(out[i])
	})

	return out, nil
}

// QueryTx is Query inside a transaction.
func (s *Store) QueryTx(ctx context.Context, _ usecase.Transaction, filter domain.Filter) ([]*domain.Movement, error) {
	return s.Query(ctx, filter)
}

// Count counts movements matching the filter.
func (s *Store) Count(_ context.Context, filter domain.Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, m := range s.movements {
		if filter.Matches(m) {
			count++
		}
	}

	return count, nil
}

// LockAccount takes the per-account mutex and parks its release on the
// transaction, so the account stays locked until commit or rollback.
func (s *Store) LockAccount(_ context.Context, tx usecase.Transaction, accountID string) error {
	memTx := tx.(*Tx)

	s.lockMu.Lock()
	lock, ok := s.accountLocks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		s.accountLocks[accountID] = lock
	}
	s.lockMu.Unlock()

	lock.Lock()
	memTx.onRelease(lock.Unlock)

	return nil
}

// Begin starts a transaction. The memory transaction only tracks held
// account locks; writes apply immediately.
func (s *Store) Begin(_ context.Context) (usecase.Transaction, error) {
	return &Tx{}, nil
}

// Tx is the memory store's transaction. It exists to scope account locks;
// Commit and Rollback both release them.
type Tx struct {
	mu       sync.Mutex
	done     bool
	releases []func()
}

func (t *Tx) onRelease(fn func()) {
	t.mu.Lock()
	t.releases = append(t.releases, fn)
	t.mu.Unlock()
}

// Commit releases the transaction's account locks.
func (t *Tx) Commit(_ context.Context) error {
	t.release()
	return nil
}

// Rollback releases the transaction's account locks. Movements written
// through the transaction are not undone.
func (t *Tx) Rollback(_ context.Context) error {
	t.release()
	return nil
}

func (t *Tx) release() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return
	}
	t.done = true

	for i := len(t.releases) - 1; i >= 0; i-- {
		t.releases[i]()
	}
	t.releases = nil
}
