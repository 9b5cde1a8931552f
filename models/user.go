package models

// User roles. A role is assigned once during onboarding step 1 and is not
// changed afterwards through this system. "admin" is never self-selectable.
const (
	RoleClient  = "client"
	RoleService = "service"
	RoleCare    = "care"
	RoleAdmin   = "admin"
)

// User and listing statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// UserRecord represents a user held in the external user record store.
// Identity fields come from the store itself; everything else lives in the
// record's private metadata bag and is mutated via field merges.
type UserRecord struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	Role       string `json:"role,omitempty"`
	Status     string `json:"status,omitempty"`
	Credits    int    `json:"credits"`
	Compliance string `json:"compliance,omitempty"` // RFC3339; non-empty means terms accepted
	Gender     string `json:"gender,omitempty"`
	Phone      string `json:"phone,omitempty"`

	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`

	// Company attributes for service providers and care companies.
	CompanyTitle       string `json:"companyTitle,omitempty"`
	CompanyCategory    string `json:"companyCategory,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	TaxID              string `json:"taxId,omitempty"`

	// Care-giver profile attributes.
	DOB          string       `json:"dob,omitempty"`
	Nationality  string       `json:"nationality,omitempty"`
	Experience   string       `json:"experience,omitempty"` // junior, experienced, senior
	Skills       []string     `json:"skills,omitempty"`
	Languages    []string     `json:"languages,omitempty"`
	Certificates []string     `json:"certificates,omitempty"` // file store URLs
	WorkingHours WorkingHours `json:"workingHours,omitempty"`
}

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleService, RoleCare, RoleAdmin:
		return true
	}
	return false
}

// IsOnboarded reports whether the record passed the admission gate.
// Role, phone and gender present is the sole onboarding criterion.
func (u *UserRecord) IsOnboarded() bool {
	return u.Role != "" && u.Phone != "" && u.Gender != ""
}
