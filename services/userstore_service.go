package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/models"
)

// UserStoreInterface defines the operations against the external user record
// store's management API. The store owns identity fields and a private
// metadata bag per user; UpdateMetadata performs a field merge, never a
// document replace.
type UserStoreInterface interface {
	GetUser(userID string) (*models.UserRecord, error)
	ListUsers() ([]models.UserRecord, error)
	UpdateMetadata(userID string, fields map[string]interface{}) (*models.UserRecord, error)
	DeleteUser(userID string) error
}

// UserStoreService talks to the user record store over its HTTPS management API
type UserStoreService struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

var userStoreInstance UserStoreInterface

// InitUserStoreService initializes the user store client from configuration
func InitUserStoreService(cfg *config.Config) UserStoreInterface {
	userStoreInstance = &UserStoreService{
		baseURL:   cfg.UserStoreAPIURL,
		secretKey: cfg.UserStoreSecretKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return userStoreInstance
}

// GetUserStoreService returns the initialized user store instance
func GetUserStoreService() UserStoreInterface {
	return userStoreInstance
}

// SetUserStoreService sets the user store instance (primarily for testing)
func SetUserStoreService(service UserStoreInterface) {
	userStoreInstance = service
}

// GetUser fetches a single user record by id
func (s *UserStoreService) GetUser(userID string) (*models.UserRecord, error) {
	var user models.UserRecord
	if err := s.do(http.MethodGet, "/users/"+userID, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers fetches all user records
func (s *UserStoreService) ListUsers() ([]models.UserRecord, error) {
	var users []models.UserRecord
	if err := s.do(http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateMetadata merges the given fields into the user's private metadata bag
// and returns the updated record
func (s *UserStoreService) UpdateMetadata(userID string, fields map[string]interface{}) (*models.UserRecord, error) {
	payload := map[string]interface{}{
		"privateMetadata": fields,
	}

	var user models.UserRecord
	if err := s.do(http.MethodPatch, "/users/"+userID+"/metadata", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user record from the store
func (s *UserStoreService) DeleteUser(userID string) error {
	return s.do(http.MethodDelete, "/users/"+userID, nil, nil)
}

// do executes one management API call and decodes the JSON response into out
func (s *UserStoreService) do(method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call user store: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("user store returned status %d: %s", resp.StatusCode, string(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode user store response: %w", err)
	}
	return nil
}
