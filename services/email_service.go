package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/care2you/care2you-api/config"
)

// EmailMessage is one outbound transactional email
type EmailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// EmailInterface defines the outbound email operations.
// Send returns the provider's raw response body so handlers can pass it
// through unchanged.
type EmailInterface interface {
	Send(msg EmailMessage) (map[string]interface{}, error)
}

// EmailService sends transactional email through the provider's HTTP API
type EmailService struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

var emailServiceInstance EmailInterface

// InitEmailService initializes the email service from configuration
func InitEmailService(cfg *config.Config) EmailInterface {
	emailServiceInstance = &EmailService{
		endpoint: "https://api.resend.com/emails",
		apiKey:   cfg.EmailAPIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return emailServiceInstance
}

// GetEmailService returns the initialized email service instance
func GetEmailService() EmailInterface {
	return emailServiceInstance
}

// SetEmailService sets the email service instance (primarily for testing)
func SetEmailService(service EmailInterface) {
	emailServiceInstance = service
}

// SetEndpoint overrides the provider endpoint (primarily for testing)
func (s *EmailService) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

// Send delivers one email through the provider and returns its response
func (s *EmailService) Send(msg EmailMessage) (map[string]interface{}, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode email: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call email provider: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read email provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var providerResponse map[string]interface{}
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &providerResponse); err != nil {
			return nil, fmt.Errorf("failed to decode email provider response: %w", err)
		}
	}
	return providerResponse, nil
}
