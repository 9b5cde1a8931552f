package onboarding

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/care2you/care2you-api/models"
	"github.com/care2you/care2you-api/services"
	"github.com/stretchr/testify/assert"
)

// makeFileHeader builds a real multipart.FileHeader from in-memory content
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("certificates", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["certificates"][0]
}

func newTestFinalizer() (*Finalizer, *services.MockUserStoreService, *services.MockStorageService, *services.MockEmailService) {
	userStore := services.NewMockUserStoreService()
	storage := services.NewMockStorageService()
	email := services.NewMockEmailService()
	finalizer := &Finalizer{
		UserStore:   userStore,
		Storage:     storage,
		Email:       email,
		FromAddress: "noreply@care2you.app",
		NotifyEmail: "ops@care2you.app",
	}
	return finalizer, userStore, storage, email
}

func careFinalState(t *testing.T) State {
	t.Helper()

	info := validBasicInfo()
	info.Role = models.RoleCare

	state := NewState(nil)
	state, err := Apply(state, Action{Type: ActionAdvance, BasicInfo: info})
	assert.NoError(t, err)
	state, err = Apply(state, Action{Type: ActionAdvance, CareProfile: validCareProfile()})
	assert.NoError(t, err)
	return state
}

func TestFinishRequiresCompliance(t *testing.T) {
	finalizer, userStore, storage, email := newTestFinalizer()
	userStore.AddUser(&models.UserRecord{ID: "user_1"})

	state := careFinalState(t)
	// Compliance deliberately not accepted.
	_, err := finalizer.Finish("user_1", state, nil)

	var alert *AlertError
	assert.ErrorAs(t, err, &alert)

	// No network request of any kind may be issued while compliance is falsy.
	user, getErr := userStore.GetUser("user_1")
	assert.NoError(t, getErr)
	assert.Empty(t, user.Role, "no metadata write may have happened")
	assert.Equal(t, 0, storage.UploadCount())
	assert.Equal(t, 0, email.SentCount())
}

func TestFinishRejectsNonFinalStep(t *testing.T) {
	finalizer, _, _, _ := newTestFinalizer()

	state := NewState(nil)
	state.Draft.Compliance = true

	_, err := finalizer.Finish("user_1", state, nil)
	var alert *AlertError
	assert.ErrorAs(t, err, &alert)
}

func TestFinishCareForcesInactiveStatus(t *testing.T) {
	finalizer, userStore, _, _ := newTestFinalizer()
	userStore.AddUser(&models.UserRecord{ID: "user_1"})

	state := careFinalState(t)
	// Simulate a stale draft that somehow kept the step-1 active status.
	state.Draft.Status = models.StatusActive
	var err error
	state, err = AcceptCompliance(state, true)
	assert.NoError(t, err)

	_, err = finalizer.Finish("user_1", state, nil)
	assert.NoError(t, err)

	user, err := userStore.GetUser("user_1")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusInactive, user.Status, "care givers must be persisted inactive")
	assert.Equal(t, models.RoleCare, user.Role)
	assert.NotEmpty(t, user.Compliance, "compliance timestamp must be set")
}

func TestFinishUploadsPendingCertificates(t *testing.T) {
	finalizer, userStore, storage, _ := newTestFinalizer()
	userStore.AddUser(&models.UserRecord{ID: "user_1"})

	state := careFinalState(t)
	state, err := AcceptCompliance(state, true)
	assert.NoError(t, err)

	pending := []*multipart.FileHeader{
		makeFileHeader(t, "first-aid.pdf", []byte("certificate content")),
	}

	next, err := finalizer.Finish("user_1", state, pending)
	assert.NoError(t, err)
	assert.Equal(t, 1, storage.UploadCount())
	assert.Len(t, next.Draft.Certificates, 2, "pending file URL appended to existing certificate")

	user, err := userStore.GetUser("user_1")
	assert.NoError(t, err)
	assert.Len(t, user.Certificates, 2)
}

func TestFinishPersistFailureKeepsUploads(t *testing.T) {
	finalizer, userStore, storage, email := newTestFinalizer()
	userStore.AddUser(&models.UserRecord{ID: "user_1"})
	userStore.FailFor("user_1")

	state := careFinalState(t)
	state, err := AcceptCompliance(state, true)
	assert.NoError(t, err)

	pending := []*multipart.FileHeader{
		makeFileHeader(t, "cert.pdf", []byte("content")),
	}

	_, err = finalizer.Finish("user_1", state, pending)
	assert.Error(t, err)

	// Uploaded certificates are not rolled back; they stay orphaned in the
	// file store. No email goes out either.
	assert.Equal(t, 1, storage.UploadCount())
	assert.Equal(t, 0, email.SentCount())
}

func TestFinishClientUsesServiceDataPath(t *testing.T) {
	finalizer, userStore, storage, email := newTestFinalizer()
	userStore.AddUser(&models.UserRecord{ID: "user_2"})

	state := NewState(nil)
	state, err := Apply(state, Action{Type: ActionAdvance, BasicInfo: validBasicInfo()})
	assert.NoError(t, err)
	state, err = AcceptCompliance(state, true)
	assert.NoError(t, err)

	_, err = finalizer.Finish("user_2", state, nil)
	assert.NoError(t, err)

	user, err := userStore.GetUser("user_2")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.Equal(t, models.StatusActive, user.Status)
	assert.Empty(t, user.DOB, "care fields are not written on the service-data path")
	assert.Equal(t, 0, storage.UploadCount())
	assert.Equal(t, 1, email.SentCount())
}

func TestFinishEmailFailureIsNotFatal(t *testing.T) {
	finalizer, userStore, _, email := newTestFinalizer()
	userStore.AddUser(&models.UserRecord{ID: "user_3"})
	email.FailNext()

	state := NewState(nil)
	state, err := Apply(state, Action{Type: ActionAdvance, BasicInfo: validBasicInfo()})
	assert.NoError(t, err)
	state, err = AcceptCompliance(state, true)
	assert.NoError(t, err)

	_, err = finalizer.Finish("user_3", state, nil)
	assert.NoError(t, err, "email failure after a successful write is logged only")

	user, err := userStore.GetUser("user_3")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleClient, user.Role)
}
