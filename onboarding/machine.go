package onboarding

import (
	"github.com/care2you/care2you-api/models"
	"github.com/care2you/care2you-api/utils"
)

// Apply is the pure transition function of the onboarding machine.
// It returns the next state, or the unchanged input state together with an
// *AlertError when the transition is rejected. Apply never performs I/O;
// persistence and uploads happen only in Finalizer.Finish.
func Apply(state State, action Action) (State, error) {
	switch action.Type {
	case ActionBack:
		if state.Step > 1 {
			state.Step--
		}
		return state, nil
	case ActionAdvance:
		return advance(state, action)
	default:
		return state, &AlertError{Message: "unknown action"}
	}
}

// IsFinalStep reports whether the state sits on its role's compliance step,
// the only step from which Finish is legal. Clients finish on step 2;
// service providers and care givers continue to a shared step 3.
func IsFinalStep(state State) bool {
	switch state.Draft.Role {
	case models.RoleClient:
		return state.Step == 2
	case models.RoleService, models.RoleCare:
		return state.Step == 3
	}
	return false
}

func advance(state State, action Action) (State, error) {
	// On the final step the only advance is ticking the compliance checkbox;
	// the flow itself completes with finish.
	if IsFinalStep(state) {
		if action.Compliance != nil {
			return AcceptCompliance(state, action.Compliance.Accepted)
		}
		return state, &AlertError{Message: "compliance step completes with finish"}
	}

	switch state.Step {
	case 1:
		return advanceBasicInfo(state, action)
	case 2:
		switch state.Draft.Role {
		case models.RoleService:
			return advanceCompany(state, action)
		case models.RoleCare:
			return advanceCareProfile(state, action)
		}
		return state, &AlertError{Message: "no role selected"}
	}
	return state, &AlertError{Message: "unknown step"}
}

func advanceBasicInfo(state State, action Action) (State, error) {
	if action.BasicInfo == nil {
		return state, &AlertError{Message: "missing step data"}
	}
	info := *action.BasicInfo
	if err := validateStep(info); err != nil {
		return state, err
	}

	draft := state.Draft
	draft.Role = info.Role
	draft.Gender = info.Gender
	draft.Phone = utils.DigitsOnly(info.Phone)
	draft.Email = info.Email
	draft.Street = info.Street
	draft.Number = info.Number
	draft.PostalCode = info.PostalCode
	draft.City = info.City
	// Status goes active for every role here; the care flow forces it back
	// to inactive on its profile step.
	draft.Status = models.StatusActive

	state.Draft = draft
	state.Step = 2
	return state, nil
}

func advanceCompany(state State, action Action) (State, error) {
	if action.Company == nil {
		return state, &AlertError{Message: "missing step data"}
	}
	company := *action.Company
	if err := validateStep(company); err != nil {
		return state, err
	}

	draft := state.Draft
	draft.CompanyTitle = company.CompanyTitle
	draft.CompanyCategory = company.CompanyCategory
	draft.CompanyDescription = company.CompanyDescription
	draft.TaxID = company.TaxID

	state.Draft = draft
	state.Step = 3
	return state, nil
}

func advanceCareProfile(state State, action Action) (State, error) {
	if action.CareProfile == nil {
		return state, &AlertError{Message: "missing step data"}
	}
	profile := *action.CareProfile
	if err := validateStep(profile); err != nil {
		return state, err
	}
	if profile.WorkingHours == nil || !profile.WorkingHours.HasEnabledDay() {
		return state, &AlertError{Message: "workinghours must have at least one enabled day"}
	}
	if len(profile.Certificates)+profile.PendingFiles == 0 {
		return state, &AlertError{Message: "certificates are required"}
	}

	draft := state.Draft
	draft.DOB = profile.DOB
	draft.Nationality = profile.Nationality
	draft.Experience = profile.Experience
	draft.Skills = profile.Skills
	draft.Languages = profile.Languages
	draft.WorkingHours = profile.WorkingHours
	if len(profile.Certificates) > 0 {
		draft.Certificates = profile.Certificates
	}
	// Care givers go live only after review.
	draft.Status = models.StatusInactive

	state.Draft = draft
	state.Step = 3
	return state, nil
}

// AcceptCompliance records the terms-acceptance checkbox on the draft.
// It is legal on the final step only.
func AcceptCompliance(state State, accepted bool) (State, error) {
	if !IsFinalStep(state) {
		return state, &AlertError{Message: "compliance is only collected on the final step"}
	}
	state.Draft.Compliance = accepted
	return state, nil
}
