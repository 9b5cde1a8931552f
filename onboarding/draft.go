package onboarding

import (
	"github.com/care2you/care2you-api/models"
)

// Draft accumulates the user-metadata record across the onboarding steps.
// It is a plain serializable value; the caller round-trips it between
// transitions, so nothing is held server-side.
type Draft struct {
	Role       string `json:"role"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Status     string `json:"status"`

	CompanyTitle       string `json:"companyTitle"`
	CompanyCategory    string `json:"companyCategory"`
	CompanyDescription string `json:"companyDescription"`
	TaxID              string `json:"taxId"`

	DOB          string              `json:"dob"`
	Nationality  string              `json:"nationality"`
	Experience   string              `json:"experience"`
	Skills       []string            `json:"skills"`
	Languages    []string            `json:"languages"`
	Certificates []string            `json:"certificates"`
	WorkingHours models.WorkingHours `json:"workingHours"`

	Compliance bool `json:"compliance"`
}

// State is the whole machine state: the current step index plus the draft.
type State struct {
	Step  int   `json:"step"`
	Draft Draft `json:"draft"`
}

// NewState builds the initial state from an existing user record, so a
// re-entrant onboarding resumes with prior values. Absent collections
// default to empty slices and absent working hours to the all-disabled
// weekday map.
func NewState(user *models.UserRecord) State {
	draft := Draft{}
	if user != nil {
		draft = Draft{
			Role:               user.Role,
			Gender:             user.Gender,
			Phone:              user.Phone,
			Email:              user.Email,
			Street:             user.Street,
			Number:             user.Number,
			PostalCode:         user.PostalCode,
			City:               user.City,
			Status:             user.Status,
			CompanyTitle:       user.CompanyTitle,
			CompanyCategory:    user.CompanyCategory,
			CompanyDescription: user.CompanyDescription,
			TaxID:              user.TaxID,
			DOB:                user.DOB,
			Nationality:        user.Nationality,
			Experience:         user.Experience,
			Skills:             user.Skills,
			Languages:          user.Languages,
			Certificates:       user.Certificates,
			WorkingHours:       user.WorkingHours,
			Compliance:         user.Compliance != "",
		}
	}

	if draft.Skills == nil {
		draft.Skills = []string{}
	}
	if draft.Languages == nil {
		draft.Languages = []string{}
	}
	if draft.Certificates == nil {
		draft.Certificates = []string{}
	}
	if draft.WorkingHours == nil {
		draft.WorkingHours = models.DefaultWorkingHours()
	}

	return State{Step: 1, Draft: draft}
}

// BasicInfoStep carries the step-1 form fields, collected from all roles.
// Postal code length is deliberately not checked, only presence.
type BasicInfoStep struct {
	Role       string `json:"role" validate:"required,oneof=client service care"`
	Gender     string `json:"gender" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Street     string `json:"street" validate:"required"`
	Number     string `json:"number" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	City       string `json:"city" validate:"required"`
}

// CompanyStep carries the service-provider company fields. Tax id is optional.
type CompanyStep struct {
	CompanyTitle       string `json:"companyTitle" validate:"required"`
	CompanyCategory    string `json:"companyCategory" validate:"required"`
	CompanyDescription string `json:"companyDescription" validate:"required"`
	TaxID              string `json:"taxId"`
}

// CareProfileStep carries the care-giver profile fields. PendingFiles counts
// certificate files selected locally but not yet uploaded; the certificate
// requirement passes when either uploaded URLs or pending files exist.
type CareProfileStep struct {
	DOB          string              `json:"dob" validate:"required"`
	Nationality  string              `json:"nationality" validate:"required"`
	Experience   string              `json:"experience" validate:"required,oneof=junior experienced senior"`
	Skills       []string            `json:"skills" validate:"required,min=1"`
	Languages    []string            `json:"languages" validate:"required,min=1"`
	WorkingHours models.WorkingHours `json:"workingHours"`
	Certificates []string            `json:"certificates"`
	PendingFiles int                 `json:"pendingFiles"`
}

// ComplianceStep carries the terms-acceptance checkbox.
type ComplianceStep struct {
	Accepted bool `json:"accepted"`
}

// Action is one input to the reducer.
type Action struct {
	Type        string           `json:"type"` // "advance" or "back"
	BasicInfo   *BasicInfoStep   `json:"basicInfo,omitempty"`
	Company     *CompanyStep     `json:"company,omitempty"`
	CareProfile *CareProfileStep `json:"careProfile,omitempty"`
	Compliance  *ComplianceStep  `json:"compliance,omitempty"`
}

const (
	ActionAdvance = "advance"
	ActionBack    = "back"
)
