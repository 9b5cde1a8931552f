package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/care2you/care2you-api/models"
)

// MockUserStoreService is an in-memory implementation of UserStoreInterface
// for testing
type MockUserStoreService struct {
	users    map[string]*models.UserRecord
	failIDs  map[string]bool // per-user failure injection
	failAll  bool
	mu       sync.RWMutex
}

// NewMockUserStoreService creates a new mock user store
func NewMockUserStoreService() *MockUserStoreService {
	return &MockUserStoreService{
		users:   make(map[string]*models.UserRecord),
		failIDs: make(map[string]bool),
	}
}

// SetAsMockForTesting sets this mock as the global user store instance for testing
func (m *MockUserStoreService) SetAsMockForTesting() {
	SetUserStoreService(m)
}

// AddUser seeds a user record into the mock store
func (m *MockUserStoreService) AddUser(user *models.UserRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
}

// FailFor makes every operation on the given user id fail
func (m *MockUserStoreService) FailFor(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failIDs[userID] = true
}

// ClearFailures removes all failure injections
func (m *MockUserStoreService) ClearFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failIDs = make(map[string]bool)
	m.failAll = false
}

// FailAll makes every operation fail
func (m *MockUserStoreService) FailAll(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAll = fail
}

// GetUser returns the stored record for the given id
func (m *MockUserStoreService) GetUser(userID string) (*models.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkFailure(userID); err != nil {
		return nil, err
	}
	user, exists := m.users[userID]
	if !exists {
		return nil, fmt.Errorf("user not found in mock store: %s", userID)
	}
	copied := *user
	return &copied, nil
}

// ListUsers returns all stored records
func (m *MockUserStoreService) ListUsers() ([]models.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.failAll {
		return nil, fmt.Errorf("mock user store failure")
	}
	users := make([]models.UserRecord, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, *user)
	}
	return users, nil
}

// UpdateMetadata merges fields into the stored record via a JSON round trip,
// matching the store's field-merge semantics
func (m *MockUserStoreService) UpdateMetadata(userID string, fields map[string]interface{}) (*models.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkFailure(userID); err != nil {
		return nil, err
	}
	user, exists := m.users[userID]
	if !exists {
		return nil, fmt.Errorf("user not found in mock store: %s", userID)
	}

	// Marshal the current record to a map, merge the fields, unmarshal back.
	current, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	var merged map[string]interface{}
	if err := json.Unmarshal(current, &merged); err != nil {
		return nil, err
	}
	for key, value := range fields {
		merged[key] = value
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	var updated models.UserRecord
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, err
	}

	m.users[userID] = &updated
	copied := updated
	return &copied, nil
}

// DeleteUser removes the record from the mock store
func (m *MockUserStoreService) DeleteUser(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkFailure(userID); err != nil {
		return err
	}
	if _, exists := m.users[userID]; !exists {
		return fmt.Errorf("user not found in mock store: %s", userID)
	}
	delete(m.users, userID)
	return nil
}

// HasUser checks whether a record exists in the mock store
func (m *MockUserStoreService) HasUser(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.users[userID]
	return exists
}

// UserCount returns the number of stored records
func (m *MockUserStoreService) UserCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// Clear removes all records and failure injections
func (m *MockUserStoreService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make(map[string]*models.UserRecord)
	m.failIDs = make(map[string]bool)
	m.failAll = false
}

func (m *MockUserStoreService) checkFailure(userID string) error {
	if m.failAll {
		return fmt.Errorf("mock user store failure")
	}
	if m.failIDs[userID] {
		return fmt.Errorf("mock user store failure for %s", userID)
	}
	return nil
}
