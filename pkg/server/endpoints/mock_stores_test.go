package endpoints

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server/store"
)

// MockResourcesStore implements store.ResourcesStore for testing using testify/mock
type MockResourcesStore struct {
	mock.Mock
}

func NewMockResourcesStore() *MockResourcesStore {
	return &MockResourcesStore{}
}

func (m *MockResourcesStore) FetchResource(kind model.ResourceKind, resourceID string) (*model.Resource, error) {
	args := m.Called(kind, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourcesStore) ToggleVisibility(kind model.ResourceKind, resourceID string) (*model.Resource, error) {
	args := m.Called(kind, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourcesStore) ListPublicByOwner(ownerID string, limit int) ([]store.PublicResource, error) {
	args := m.Called(ownerID, limit)
	return args.Get(0).([]store.PublicResource), args.Error(1)
}

func (m *MockResourcesStore) SearchPublic(query string, limit int) ([]store.PublicResource, error) {
	args := m.Called(query, limit)
	return args.Get(0).([]store.PublicResource), args.Error(1)
}

func (m *MockResourcesStore) SharedWith(requesterID string) ([]model.Resource, error) {
	args := m.Called(requesterID)
	return args.Get(0).([]model.Resource), args.Error(1)
}

// MockShareRequestsStore implements store.ShareRequestsStore for testing using testify/mock
type MockShareRequestsStore struct {
	mock.Mock
}

func NewMockShareRequestsStore() *MockShareRequestsStore {
	return &MockShareRequestsStore{}
}

func (m *MockShareRequestsStore) CreateRequest(req *model.ShareRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockShareRequestsStore) FetchRequest(requestID string) (*model.ShareRequest, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareRequest), args.Error(1)
}

func (m *MockShareRequestsStore) ListPendingForOwner(ownerID string) ([]store.PendingRequest, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]store.PendingRequest), args.Error(1)
}

func (m *MockShareRequestsStore) Decide(requestID string, status model.Status, decidedAt time.Time) (bool, error) {
	args := m.Called(requestID, status, decidedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareRequestsStore) HasApproved(requesterID string, kind model.ResourceKind, resourceID string) (bool, error) {
	args := m.Called(requesterID, kind, resourceID)
	return args.Bool(0), args.Error(1)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) SearchUsers(query, excludeID string, limit int) ([]model.User, error) {
	args := m.Called(query, excludeID, limit)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUsersStore) FetchUser(userID string) (*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
