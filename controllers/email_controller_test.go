package controllers

import (
	"net/http"
	"testing"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/services"
	"github.com/stretchr/testify/assert"
)

func setupMockEmail(t *testing.T) *services.MockEmailService {
	config.SetConfig(&config.Config{
		GoEnv:            "test",
		EmailFromAddress: "noreply@care2you.test",
		AdminNotifyEmail: "ops@care2you.test",
	})

	mock := services.NewMockEmailService()
	mock.SetAsMockForTesting()
	return mock
}

func TestSendEmailSignup(t *testing.T) {
	email := setupMockEmail(t)
	router := setupTestRouter()
	router.POST("/api/send-email-signup", SendEmailSignup)

	w := doJSON(router, http.MethodPost, "/api/send-email-signup", map[string]interface{}{
		"userId": "user_1", "firstName": "Anna", "lastName": "Schmidt",
		"role": "care", "city": "Berlin",
	})
	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	sent := email.SentMessages()
	assert.Len(t, sent, 1)
	assert.Equal(t, "ops@care2you.test", sent[0].To)
	assert.Equal(t, "noreply@care2you.test", sent[0].From)
	assert.Contains(t, sent[0].HTML, "Anna Schmidt")
	assert.Contains(t, sent[0].HTML, "care")
}

func TestSendEmailSignupMissingFields(t *testing.T) {
	email := setupMockEmail(t)
	router := setupTestRouter()
	router.POST("/api/send-email-signup", SendEmailSignup)

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing userId", map[string]interface{}{"role": "client"}},
		{"missing role", map[string]interface{}{"userId": "user_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/send-email-signup", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Equal(t, 0, email.SentCount())
}

func TestSendEmailSignupProviderFailure(t *testing.T) {
	email := setupMockEmail(t)
	email.FailNext()

	router := setupTestRouter()
	router.POST("/api/send-email-signup", SendEmailSignup)

	w := doJSON(router, http.MethodPost, "/api/send-email-signup", map[string]interface{}{
		"userId": "user_1", "role": "client",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSendEmailServiceRequest(t *testing.T) {
	email := setupMockEmail(t)
	router := setupTestRouter()
	router.POST("/api/send-email-service-request", SendEmailServiceRequest)

	w := doJSON(router, http.MethodPost, "/api/send-email-service-request", map[string]interface{}{
		"toEmail": "provider@example.com", "serviceTitle": "Apartment cleaning",
		"fromName": "Max", "fromEmail": "max@example.com", "message": "Is Tuesday possible?",
	})
	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	sent := email.SentMessages()
	assert.Len(t, sent, 1)
	assert.Equal(t, "provider@example.com", sent[0].To)
	assert.Equal(t, "New request for Apartment cleaning", sent[0].Subject)
	assert.Contains(t, sent[0].HTML, "Is Tuesday possible?")
}

func TestSendEmailServiceRequestValidation(t *testing.T) {
	email := setupMockEmail(t)
	router := setupTestRouter()
	router.POST("/api/send-email-service-request", SendEmailServiceRequest)

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing toEmail", map[string]interface{}{"serviceTitle": "Cleaning", "fromName": "Max"}},
		{"invalid toEmail", map[string]interface{}{"toEmail": "not-an-email", "serviceTitle": "Cleaning", "fromName": "Max"}},
		{"missing serviceTitle", map[string]interface{}{"toEmail": "a@b.com", "fromName": "Max"}},
		{"missing fromName", map[string]interface{}{"toEmail": "a@b.com", "serviceTitle": "Cleaning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/send-email-service-request", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Equal(t, 0, email.SentCount())
}
