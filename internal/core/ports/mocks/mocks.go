// Package mocks provides gomock test doubles for the core ports.
package mocks

import (
	"context"
	"reflect"
	"time"

	"creator-paygate/internal/core/domain"
	"creator-paygate/internal/core/ports"
	"creator-paygate/internal/x402"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// MockContentRepository is a mock of ports.ContentRepository.
type MockContentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockContentRepositoryMockRecorder
}

// MockContentRepositoryMockRecorder is the mock recorder for MockContentRepository.
type MockContentRepositoryMockRecorder struct {
	mock *MockContentRepository
}

func NewMockContentRepository(ctrl *gomock.Controller) *MockContentRepository {
	mock := &MockContentRepository{ctrl: ctrl}
	mock.recorder = &MockContentRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContentRepository) EXPECT() *MockContentRepositoryMockRecorder {
	return m.recorder
}

func (m *MockContentRepository) Create(ctx context.Context, content *domain.Content) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, content)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockContentRepositoryMockRecorder) Create(ctx, content any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockContentRepository)(nil).Create), ctx, content)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Content)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockContentRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockContentRepository)(nil).GetByID), ctx, id)
}

func (m *MockContentRepository) Update(ctx context.Context, id uuid.UUID, update domain.ContentUpdate) (*domain.Content, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, update)
	ret0, _ := ret[0].(*domain.Content)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockContentRepositoryMockRecorder) Update(ctx, id, update any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockContentRepository)(nil).Update), ctx, id, update)
}

func (m *MockContentRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Content, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByCreator", ctx, creatorID)
	ret0, _ := ret[0].([]domain.Content)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockContentRepositoryMockRecorder) ListByCreator(ctx, creatorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByCreator", reflect.TypeOf((*MockContentRepository)(nil).ListByCreator), ctx, creatorID)
}

// MockCreatorRepository is a mock of ports.CreatorRepository.
type MockCreatorRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCreatorRepositoryMockRecorder
}

type MockCreatorRepositoryMockRecorder struct {
	mock *MockCreatorRepository
}

func NewMockCreatorRepository(ctrl *gomock.Controller) *MockCreatorRepository {
	mock := &MockCreatorRepository{ctrl: ctrl}
	mock.recorder = &MockCreatorRepositoryMockRecorder{mock}
	return mock
}

func (m *MockCreatorRepository) EXPECT() *MockCreatorRepositoryMockRecorder {
	return m.recorder
}

func (m *MockCreatorRepository) Create(ctx context.Context, creator *domain.Creator) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, creator)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCreatorRepositoryMockRecorder) Create(ctx, creator any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCreatorRepository)(nil).Create), ctx, creator)
}

func (m *MockCreatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Creator, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Creator)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCreatorRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCreatorRepository)(nil).GetByID), ctx, id)
}

func (m *MockCreatorRepository) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Creator, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByAccessKey", ctx, accessKey)
	ret0, _ := ret[0].(*domain.Creator)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCreatorRepositoryMockRecorder) GetByAccessKey(ctx, accessKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAccessKey", reflect.TypeOf((*MockCreatorRepository)(nil).GetByAccessKey), ctx, accessKey)
}

// MockBlobStore is a mock of ports.BlobStore.
type MockBlobStore struct {
	ctrl     *gomock.Controller
	recorder *MockBlobStoreMockRecorder
}

type MockBlobStoreMockRecorder struct {
	mock *MockBlobStore
}

func NewMockBlobStore(ctrl *gomock.Controller) *MockBlobStore {
	mock := &MockBlobStore{ctrl: ctrl}
	mock.recorder = &MockBlobStoreMockRecorder{mock}
	return mock
}

func (m *MockBlobStore) EXPECT() *MockBlobStoreMockRecorder {
	return m.recorder
}

func (m *MockBlobStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", ctx, name, data)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBlobStoreMockRecorder) Put(ctx, name, data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockBlobStore)(nil).Put), ctx, name, data)
}

func (m *MockBlobStore) Get(ctx context.Context, locator string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, locator)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBlobStoreMockRecorder) Get(ctx, locator any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockBlobStore)(nil).Get), ctx, locator)
}

func (m *MockBlobStore) Delete(ctx context.Context, locator string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, locator)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockBlobStoreMockRecorder) Delete(ctx, locator any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockBlobStore)(nil).Delete), ctx, locator)
}

// MockFacilitator is a mock of ports.Facilitator.
type MockFacilitator struct {
	ctrl     *gomock.Controller
	recorder *MockFacilitatorMockRecorder
}

type MockFacilitatorMockRecorder struct {
	mock *MockFacilitator
}

func NewMockFacilitator(ctrl *gomock.Controller) *MockFacilitator {
	mock := &MockFacilitator{ctrl: ctrl}
	mock.recorder = &MockFacilitatorMockRecorder{mock}
	return mock
}

func (m *MockFacilitator) EXPECT() *MockFacilitatorMockRecorder {
	return m.recorder
}

func (m *MockFacilitator) Settle(ctx context.Context, req x402.SettleRequest) (*x402.SettlementResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Settle", ctx, req)
	ret0, _ := ret[0].(*x402.SettlementResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFacilitatorMockRecorder) Settle(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Settle", reflect.TypeOf((*MockFacilitator)(nil).Settle), ctx, req)
}

// MockGateService is a mock of ports.GateService.
type MockGateService struct {
	ctrl     *gomock.Controller
	recorder *MockGateServiceMockRecorder
}

type MockGateServiceMockRecorder struct {
	mock *MockGateService
}

func NewMockGateService(ctrl *gomock.Controller) *MockGateService {
	mock := &MockGateService{ctrl: ctrl}
	mock.recorder = &MockGateServiceMockRecorder{mock}
	return mock
}

func (m *MockGateService) EXPECT() *MockGateServiceMockRecorder {
	return m.recorder
}

func (m *MockGateService) Access(ctx context.Context, req ports.AccessRequest) (*ports.AccessResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Access", ctx, req)
	ret0, _ := ret[0].(*ports.AccessResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockGateServiceMockRecorder) Access(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Access", reflect.TypeOf((*MockGateService)(nil).Access), ctx, req)
}

// MockContentService is a mock of ports.ContentService.
type MockContentService struct {
	ctrl     *gomock.Controller
	recorder *MockContentServiceMockRecorder
}

type MockContentServiceMockRecorder struct {
	mock *MockContentService
}

func NewMockContentService(ctrl *gomock.Controller) *MockContentService {
	mock := &MockContentService{ctrl: ctrl}
	mock.recorder = &MockContentServiceMockRecorder{mock}
	return mock
}

func (m *MockContentService) EXPECT() *MockContentServiceMockRecorder {
	return m.recorder
}

func (m *MockContentService) Create(ctx context.Context, req ports.CreateContentRequest) (*domain.Content, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, req)
	ret0, _ := ret[0].(*domain.Content)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockContentServiceMockRecorder) Create(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockContentService)(nil).Create), ctx, req)
}

func (m *MockContentService) GetMeta(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMeta", ctx, id)
	ret0, _ := ret[0].(*domain.Content)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockContentServiceMockRecorder) GetMeta(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMeta", reflect.TypeOf((*MockContentService)(nil).GetMeta), ctx, id)
}

func (m *MockContentService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Content, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByCreator", ctx, creatorID)
	ret0, _ := ret[0].([]domain.Content)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockContentServiceMockRecorder) ListByCreator(ctx, creatorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByCreator", reflect.TypeOf((*MockContentService)(nil).ListByCreator), ctx, creatorID)
}

func (m *MockContentService) UpdatePayee(ctx context.Context, id, creatorID uuid.UUID, payeeAddress string) (*domain.Content, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePayee", ctx, id, creatorID, payeeAddress)
	ret0, _ := ret[0].(*domain.Content)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockContentServiceMockRecorder) UpdatePayee(ctx, id, creatorID, payeeAddress any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePayee", reflect.TypeOf((*MockContentService)(nil).UpdatePayee), ctx, id, creatorID, payeeAddress)
}

// MockAuthService is a mock of ports.AuthService.
type MockAuthService struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceMockRecorder
}

type MockAuthServiceMockRecorder struct {
	mock *MockAuthService
}

func NewMockAuthService(ctrl *gomock.Controller) *MockAuthService {
	mock := &MockAuthService{ctrl: ctrl}
	mock.recorder = &MockAuthServiceMockRecorder{mock}
	return mock
}

func (m *MockAuthService) EXPECT() *MockAuthServiceMockRecorder {
	return m.recorder
}

func (m *MockAuthService) Login(ctx context.Context, accessKey, secret string) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, accessKey, secret)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockAuthServiceMockRecorder) Login(ctx, accessKey, secret any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthService)(nil).Login), ctx, accessKey, secret)
}

func (m *MockAuthService) Profile(ctx context.Context, creatorID uuid.UUID) (*domain.Creator, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Profile", ctx, creatorID)
	ret0, _ := ret[0].(*domain.Creator)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuthServiceMockRecorder) Profile(ctx, creatorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Profile", reflect.TypeOf((*MockAuthService)(nil).Profile), ctx, creatorID)
}

// MockTokenService is a mock of ports.TokenService.
type MockTokenService struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceMockRecorder
}

type MockTokenServiceMockRecorder struct {
	mock *MockTokenService
}

func NewMockTokenService(ctrl *gomock.Controller) *MockTokenService {
	mock := &MockTokenService{ctrl: ctrl}
	mock.recorder = &MockTokenServiceMockRecorder{mock}
	return mock
}

func (m *MockTokenService) EXPECT() *MockTokenServiceMockRecorder {
	return m.recorder
}

func (m *MockTokenService) Generate(creatorID uuid.UUID, accessKey string) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate", creatorID, accessKey)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockTokenServiceMockRecorder) Generate(creatorID, accessKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockTokenService)(nil).Generate), creatorID, accessKey)
}

func (m *MockTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", tokenString)
	ret0, _ := ret[0].(*ports.TokenClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTokenServiceMockRecorder) Validate(tokenString any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockTokenService)(nil).Validate), tokenString)
}

// MockHashService is a mock of ports.HashService.
type MockHashService struct {
	ctrl     *gomock.Controller
	recorder *MockHashServiceMockRecorder
}

type MockHashServiceMockRecorder struct {
	mock *MockHashService
}

func NewMockHashService(ctrl *gomock.Controller) *MockHashService {
	mock := &MockHashService{ctrl: ctrl}
	mock.recorder = &MockHashServiceMockRecorder{mock}
	return mock
}

func (m *MockHashService) EXPECT() *MockHashServiceMockRecorder {
	return m.recorder
}

func (m *MockHashService) Hash(secret string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Hash", secret)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHashServiceMockRecorder) Hash(secret any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hash", reflect.TypeOf((*MockHashService)(nil).Hash), secret)
}

func (m *MockHashService) Verify(secret string, hash string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", secret, hash)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHashServiceMockRecorder) Verify(secret, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockHashService)(nil).Verify), secret, hash)
}

// MockRateLimitStore is a mock of ports.RateLimitStore.
type MockRateLimitStore struct {
	ctrl     *gomock.Controller
	recorder *MockRateLimitStoreMockRecorder
}

type MockRateLimitStoreMockRecorder struct {
	mock *MockRateLimitStore
}

func NewMockRateLimitStore(ctrl *gomock.Controller) *MockRateLimitStore {
	mock := &MockRateLimitStore{ctrl: ctrl}
	mock.recorder = &MockRateLimitStoreMockRecorder{mock}
	return mock
}

func (m *MockRateLimitStore) EXPECT() *MockRateLimitStoreMockRecorder {
	return m.recorder
}

func (m *MockRateLimitStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allow", ctx, key, limit, window)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRateLimitStoreMockRecorder) Allow(ctx, key, limit, window any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allow", reflect.TypeOf((*MockRateLimitStore)(nil).Allow), ctx, key, limit, window)
}
