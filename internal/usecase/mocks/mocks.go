package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/usecase"
)

// MockMovementRepository is a mock implementation of MovementRepository. By
// default it behaves like a small in-memory store; individual methods can be
// overridden through the Func fields.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements []*domain.Movement

	InsertFunc      func(ctx context.Context, movement *domain.Movement) error
	InsertTxFunc    func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Movement, error)
	QueryFunc       func(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error)
	QueryTxFunc     func(ctx context.Context, tx usecase.Transaction, filter domain.Filter) ([]*domain.Movement, error)
	CountFunc       func(ctx context.Context, filter domain.Filter) (int64, error)
	LockAccountFunc func(ctx context.Context, tx usecase.Transaction, accountID string) error
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{}
}

func (m *MockMovementRepository) Insert(ctx context.Context, movement *domain.Movement) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movements = append(m.movements, movement)
	return nil
}

func (m *MockMovementRepository) InsertTx(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	if m.InsertTxFunc != nil {
		return m.InsertTxFunc(ctx, tx, movement)
	}
	return m.Insert(ctx, movement)
}

func (m *MockMovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, mv := range m.movements {
		if mv.ID == id {
			return mv, nil
		}
	}
	return nil, domain.ErrMovementNotFound
}

func (m *MockMovementRepository) Query(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Movement
	for _, mv := range m.movements {
		if filter.Matches(mv) {
			result = append(result, mv)
		}
	}
	return result, nil
}

func (m *MockMovementRepository) QueryTx(ctx context.Context, tx usecase.Transaction, filter domain.Filter) ([]*domain.Movement, error) {
	if m.QueryTxFunc != nil {
		return m.QueryTxFunc(ctx, tx, filter)
	}
	return m.Query(ctx, filter)
}

func (m *MockMovementRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	movements, err := m.Query(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(movements)), nil
}

func (m *MockMovementRepository) LockAccount(ctx context.Context, tx usecase.Transaction, accountID string) error {
	if m.LockAccountFunc != nil {
		return m.LockAccountFunc(ctx, tx, accountID)
	}
	return nil
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.RolledBack = true
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager hands out no-op transactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockIDGenerator generates sequential, lexicographically ordered ids.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("%08d", m.next)
}

// MockCache is an in-memory Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// MockEventPublisher records published events.
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent

	PublishFunc func(ctx context.Context, eventType string, payload any) error
}

type PublishedEvent struct {
	Type    string
	Payload any
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, eventType, payload)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{Type: eventType, Payload: payload})
	return nil
}

// MockProjectDirectory resolves project names from a fixed map.
type MockProjectDirectory struct {
	Names map[string]string

	ProjectNameFunc func(ctx context.Context, projectID string) (string, error)
}

func NewMockProjectDirectory(names map[string]string) *MockProjectDirectory {
	return &MockProjectDirectory{Names: names}
}

func (m *MockProjectDirectory) ProjectName(ctx context.Context, projectID string) (string, error) {
	if m.ProjectNameFunc != nil {
		return m.ProjectNameFunc(ctx, projectID)
	}
	return m.Names[projectID], nil
}

// MockPayrollDirectory resolves payroll lines from a fixed map.
type MockPayrollDirectory struct {
	Lines map[int64]*domain.PayrollLine

	PayrollLineFunc func(ctx context.Context, id int64) (*domain.PayrollLine, error)
}

func NewMockPayrollDirectory(lines map[int64]*domain.PayrollLine) *MockPayrollDirectory {
	return &MockPayrollDirectory{Lines: lines}
}

func (m *MockPayrollDirectory) PayrollLine(ctx context.Context, id int64) (*domain.PayrollLine, error) {
	if m.PayrollLineFunc != nil {
		return m.PayrollLineFunc(ctx, id)
	}
	return m.Lines[id], nil
}

// MockSupplyDirectory resolves supply purchases from a fixed map.
type MockSupplyDirectory struct {
	Purchases map[int64]*domain.SupplyPurchase

	SupplyPurchaseFunc func(ctx context.Context, id int64) (*domain.SupplyPurchase, error)
}

func NewMockSupplyDirectory(purchases map[int64]*domain.SupplyPurchase) *MockSupplyDirectory {
	return &MockSupplyDirectory{Purchases: purchases}
}

func (m *MockSupplyDirectory) SupplyPurchase(ctx context.Context, id int64) (*domain.SupplyPurchase, error) {
	if m.SupplyPurchaseFunc != nil {
		return m.SupplyPurchaseFunc(ctx, id)
	}
	return m.Purchases[id], nil
}
