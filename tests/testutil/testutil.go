package testutil

import (
	"os"
	"testing"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/models"
	"github.com/care2you/care2you-api/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RequireTestEnvironment fails the test unless GO_ENV is "test". The suites
// replace global service instances and the database handle; refusing to run
// in any other environment keeps a stray invocation from touching real data.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("tests must run with GO_ENV=test (current: %q)", env)
	}
}

// NewTestConfig returns a configuration suitable for the full router: the
// auth values are syntactically valid so token middleware construction
// succeeds, while every outbound backend stays on a mock.
func NewTestConfig() *config.Config {
	return &config.Config{
		GoEnv:            "test",
		Port:             "8080",
		DatabaseURL:      "sqlite://:memory:",
		Auth0Domain:      "care2you-test.eu.auth0.com",
		Auth0Audience:    "https://api.care2you.test",
		EmailFromAddress: "noreply@care2you.test",
		AdminNotifyEmail: "ops@care2you.test",
		PublicAppURL:     "http://localhost:3000",
		LogLevel:         "info",
	}
}

// NewTestDB opens an in-memory database, migrates the listing schema and
// installs it as the global handle for the duration of the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.ServiceListing{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	previous := config.GetDB()
	config.SetDB(db)
	t.Cleanup(func() { config.SetDB(previous) })

	return db
}

// Mocks bundles the three mocked backends installed by SetupMockServices.
type Mocks struct {
	UserStore *services.MockUserStoreService
	Storage   *services.MockStorageService
	Email     *services.MockEmailService
}

// SetupMockServices replaces every external service singleton with a fresh
// mock and returns the bundle for assertions.
func SetupMockServices(t *testing.T) *Mocks {
	t.Helper()

	mocks := &Mocks{
		UserStore: services.NewMockUserStoreService(),
		Storage:   services.NewMockStorageService(),
		Email:     services.NewMockEmailService(),
	}
	mocks.UserStore.SetAsMockForTesting()
	mocks.Storage.SetAsMockForTesting()
	mocks.Email.SetAsMockForTesting()

	return mocks
}
