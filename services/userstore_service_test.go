package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/models"
	"github.com/stretchr/testify/assert"
)

// newStoreServer builds a fake management API and a client pointed at it
func newStoreServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, UserStoreInterface) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	service := InitUserStoreService(&config.Config{
		UserStoreAPIURL:    server.URL,
		UserStoreSecretKey: "test-secret",
	})
	return server, service
}

func TestUserStoreGetUser(t *testing.T) {
	_, service := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/user_1", r.URL.Path)
		assert.Equal(t, "Bearer test-secret", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(models.UserRecord{
			ID: "user_1", FirstName: "Anna", Role: models.RoleCare, Credits: 3,
		})
	})

	user, err := service.GetUser("user_1")
	assert.NoError(t, err)
	assert.Equal(t, "Anna", user.FirstName)
	assert.Equal(t, models.RoleCare, user.Role)
	assert.Equal(t, 3, user.Credits)
}

func TestUserStoreListUsers(t *testing.T) {
	_, service := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		json.NewEncoder(w).Encode([]models.UserRecord{
			{ID: "a"}, {ID: "b"},
		})
	})

	users, err := service.ListUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserStoreUpdateMetadata(t *testing.T) {
	_, service := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/user_1/metadata", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		// Fields travel wrapped under privateMetadata for a merge, not a replace.
		metadata, ok := payload["privateMetadata"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "active", metadata["status"])

		json.NewEncoder(w).Encode(models.UserRecord{ID: "user_1", Status: "active"})
	})

	user, err := service.UpdateMetadata("user_1", map[string]interface{}{"status": "active"})
	assert.NoError(t, err)
	assert.Equal(t, "active", user.Status)
}

func TestUserStoreDeleteUser(t *testing.T) {
	called := false
	_, service := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/user_1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, service.DeleteUser("user_1"))
	assert.True(t, called)
}

func TestUserStoreErrorResponse(t *testing.T) {
	_, service := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"user not found"}`))
	})

	_, err := service.GetUser("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "user not found")
}

func TestUserStoreUnreachable(t *testing.T) {
	server, service := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := service.ListUsers()
	assert.Error(t, err)
}
