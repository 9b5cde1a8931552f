package onboarding

import (
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/care2you/care2you-api/models"
	"github.com/care2you/care2you-api/services"
)

// Finalizer performs the one side-effecting call of the machine: it uploads
// any pending certificate files, persists the accumulated draft to the user
// record store, and sends the signup notification email.
type Finalizer struct {
	UserStore   services.UserStoreInterface
	Storage     services.StorageInterface
	Email       services.EmailInterface
	FromAddress string
	NotifyEmail string
}

// Finish completes the flow for the given user. While the draft's compliance
// acceptance is false no network request is issued at all. Already-uploaded
// certificate files are not rolled back when the persistence call fails, and
// an email failure after a successful write is logged only.
func (f *Finalizer) Finish(userID string, state State, pendingFiles []*multipart.FileHeader) (State, error) {
	if !IsFinalStep(state) {
		return state, &AlertError{Message: "finish is only legal on the final step"}
	}
	if !state.Draft.Compliance {
		return state, &AlertError{Message: "compliance acceptance is required"}
	}

	draft := state.Draft

	// Upload pending certificates first, replacing local handles with URLs.
	if draft.Role == models.RoleCare {
		for _, fileHeader := range pendingFiles {
			url, err := f.Storage.UploadFile(fileHeader)
			if err != nil {
				return state, fmt.Errorf("failed to upload certificate: %w", err)
			}
			draft.Certificates = append(draft.Certificates, url)
		}
		// Final say on care status, regardless of earlier step values.
		draft.Status = models.StatusInactive
	}

	fields := metadataFields(draft)
	fields["compliance"] = time.Now().UTC().Format(time.RFC3339)

	if _, err := f.UserStore.UpdateMetadata(userID, fields); err != nil {
		// Keep the caller on its current step; certificates uploaded above
		// stay in the file store.
		return state, fmt.Errorf("failed to persist onboarding data: %w", err)
	}

	if err := f.sendSignupEmail(userID, draft); err != nil {
		log.Printf("signup notification email failed for %s: %v", userID, err)
	}

	state.Draft = draft
	return state, nil
}

// metadataFields builds the field-merge payload for the role-appropriate
// persistence path. The care path carries the profile attributes; the
// service-data path is shared by clients and service providers.
func metadataFields(draft Draft) map[string]interface{} {
	fields := map[string]interface{}{
		"role":       draft.Role,
		"gender":     draft.Gender,
		"phone":      draft.Phone,
		"street":     draft.Street,
		"number":     draft.Number,
		"postalCode": draft.PostalCode,
		"city":       draft.City,
		"status":     draft.Status,
	}

	switch draft.Role {
	case models.RoleService:
		fields["companyTitle"] = draft.CompanyTitle
		fields["companyCategory"] = draft.CompanyCategory
		fields["companyDescription"] = draft.CompanyDescription
		fields["taxId"] = draft.TaxID
	case models.RoleCare:
		fields["dob"] = draft.DOB
		fields["nationality"] = draft.Nationality
		fields["experience"] = draft.Experience
		fields["skills"] = draft.Skills
		fields["languages"] = draft.Languages
		fields["certificates"] = draft.Certificates
		fields["workingHours"] = draft.WorkingHours
		fields["companyTitle"] = draft.CompanyTitle
		fields["companyCategory"] = draft.CompanyCategory
		fields["companyDescription"] = draft.CompanyDescription
		fields["taxId"] = draft.TaxID
	}

	return fields
}

func (f *Finalizer) sendSignupEmail(userID string, draft Draft) error {
	if f.Email == nil || f.NotifyEmail == "" {
		return nil
	}
	_, err := f.Email.Send(services.EmailMessage{
		From:    f.FromAddress,
		To:      f.NotifyEmail,
		Subject: "New signup completed",
		HTML: fmt.Sprintf("<p>User %s finished onboarding with role %s in %s.</p>",
			userID, draft.Role, draft.City),
	})
	return err
}
