//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	domain "github.com/ruival/obracap/internal/domain"
	usecase "github.com/ruival/obracap/internal/usecase"
	gomock "go.uber.org/mock/gomock"
)

// MockMovementRepo is a mock of MovementRepository interface.
type MockMovementRepo struct {
	ctrl     *gomock.Controller
	recorder *MockMovementRepoMockRecorder
	isgomock struct{}
}

// MockMovementRepoMockRecorder is the mock recorder for MockMovementRepo.
type MockMovementRepoMockRecorder struct {
	mock *MockMovementRepo
}

// NewMockMovementRepo creates a new mock instance.
func NewMockMovementRepo(ctrl *gomock.Controller) *MockMovementRepo {
	mock := &MockMovementRepo{ctrl: ctrl}
	mock.recorder = &MockMovementRepoMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMovementRepo) EXPECT() *MockMovementRepoMockRecorder {
	return m.recorder
}

// Insert mocks base method.
func (m *MockMovementRepo) Insert(ctx context.Context, movement *domain.Movement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, movement)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockMovementRepoMockRecorder) Insert(ctx, movement any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockMovementRepo)(nil).Insert), ctx, movement)
}

// InsertTx mocks base method.
func (m *MockMovementRepo) InsertTx(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertTx", ctx, tx, movement)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertTx indicates an expected call of InsertTx.
func (mr *MockMovementRepoMockRecorder) InsertTx(ctx, tx, movement any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertTx", reflect.TypeOf((*MockMovementRepo)(nil).InsertTx), ctx, tx, movement)
}

// GetByID mocks base method.
func (m *MockMovementRepo) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Movement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockMovementRepoMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockMovementRepo)(nil).GetByID), ctx, id)
}

// Query mocks base method.
func (m *MockMovementRepo) Query(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Query", ctx, filter)
	ret0, _ := ret[0].([]*domain.Movement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Query indicates an expected call of Query.
func (mr *MockMovementRepoMockRecorder) Query(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Query", reflect.TypeOf((*MockMovementRepo)(nil).Query), ctx, filter)
}

// QueryTx mocks base method.
func (m *MockMovementRepo) QueryTx(ctx context.Context, tx usecase.Transaction, filter domain.Filter) ([]*domain.Movement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QueryTx", ctx, tx, filter)
	ret0, _ := ret[0].([]*domain.Movement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// QueryTx indicates an expected call of QueryTx.
func (mr *MockMovementRepoMockRecorder) QueryTx(ctx, tx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QueryTx", reflect.TypeOf((*MockMovementRepo)(nil).QueryTx), ctx, tx, filter)
}

// Count mocks base method.
func (m *MockMovementRepo) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx, filter)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockMovementRepoMockRecorder) Count(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockMovementRepo)(nil).Count), ctx, filter)
}

// LockAccount mocks base method.
func (m *MockMovementRepo) LockAccount(ctx context.Context, tx usecase.Transaction, accountID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LockAccount", ctx, tx, accountID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LockAccount indicates an expected call of LockAccount.
func (mr *MockMovementRepoMockRecorder) LockAccount(ctx, tx, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LockAccount", reflect.TypeOf((*MockMovementRepo)(nil).LockAccount), ctx, tx, accountID)
}

// MockProjectDir is a mock of ProjectDirectory interface.
type MockProjectDir struct {
	ctrl     *gomock.Controller
	recorder *MockProjectDirMockRecorder
	isgomock struct{}
}

// MockProjectDirMockRecorder is the mock recorder for MockProjectDir.
type MockProjectDirMockRecorder struct {
	mock *MockProjectDir
}

// NewMockProjectDir creates a new mock instance.
func NewMockProjectDir(ctrl *gomock.Controller) *MockProjectDir {
	mock := &MockProjectDir{ctrl: ctrl}
	mock.recorder = &MockProjectDirMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProjectDir) EXPECT() *MockProjectDirMockRecorder {
	return m.recorder
}

// ProjectName mocks base method.
func (m *MockProjectDir) ProjectName(ctx context.Context, projectID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProjectName", ctx, projectID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProjectName indicates an expected call of ProjectName.
func (mr *MockProjectDirMockRecorder) ProjectName(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectName", reflect.TypeOf((*MockProjectDir)(nil).ProjectName), ctx, projectID)
}

// MockPayrollDir is a mock of PayrollDirectory interface.
type MockPayrollDir struct {
	ctrl     *gomock.Controller
	recorder *MockPayrollDirMockRecorder
	isgomock struct{}
}

// MockPayrollDirMockRecorder is the mock recorder for MockPayrollDir.
type MockPayrollDirMockRecorder struct {
	mock *MockPayrollDir
}

// NewMockPayrollDir creates a new mock instance.
func NewMockPayrollDir(ctrl *gomock.Controller) *MockPayrollDir {
	mock := &MockPayrollDir{ctrl: ctrl}
	mock.recorder = &MockPayrollDirMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPayrollDir) EXPECT() *MockPayrollDirMockRecorder {
	return m.recorder
}

// PayrollLine mocks base method.
func (m *MockPayrollDir) PayrollLine(ctx context.Context, id int64) (*domain.PayrollLine, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PayrollLine", ctx, id)
	ret0, _ := ret[0].(*domain.PayrollLine)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PayrollLine indicates an expected call of PayrollLine.
func (mr *MockPayrollDirMockRecorder) PayrollLine(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PayrollLine", reflect.TypeOf((*MockPayrollDir)(nil).PayrollLine), ctx, id)
}

// MockSupplyDir is a mock of SupplyDirectory interface.
type MockSupplyDir struct {
	ctrl     *gomock.Controller
	recorder *MockSupplyDirMockRecorder
	isgomock struct{}
}

// MockSupplyDirMockRecorder is the mock recorder for MockSupplyDir.
type MockSupplyDirMockRecorder struct {
	mock *MockSupplyDir
}

// NewMockSupplyDir creates a new mock instance.
func NewMockSupplyDir(ctrl *gomock.Controller) *MockSupplyDir {
	mock := &MockSupplyDir{ctrl: ctrl}
	mock.recorder = &MockSupplyDirMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSupplyDir) EXPECT() *MockSupplyDirMockRecorder {
	return m.recorder
}

// SupplyPurchase mocks base method.
func (m *MockSupplyDir) SupplyPurchase(ctx context.Context, id int64) (*domain.SupplyPurchase, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SupplyPurchase", ctx, id)
	ret0, _ := ret[0].(*domain.SupplyPurchase)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SupplyPurchase indicates an expected call of SupplyPurchase.
func (mr *MockSupplyDirMockRecorder) SupplyPurchase(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SupplyPurchase", reflect.TypeOf((*MockSupplyDir)(nil).SupplyPurchase), ctx, id)
}
