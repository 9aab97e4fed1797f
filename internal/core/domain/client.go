package domain

import "time"

// CaseStatus represents the lifecycle state of a client case.
type CaseStatus string

const (
	CasePending   CaseStatus = "pending"
	CaseActive    CaseStatus = "active"
	CaseCompleted CaseStatus = "completed"
	CaseSuspended CaseStatus = "suspended"
)

// validCaseTransitions defines the allowed state machine transitions.
// Suspension is reachable from any non-terminal state.
var validCaseTransitions = map[CaseStatus][]CaseStatus{
	CasePending:   {CaseActive, CaseSuspended},
	CaseActive:    {CaseCompleted, CaseSuspended},
	CaseSuspended: {CaseActive},
}

// CanTransitionTo reports whether a transition from the current case status
// to next is valid.
func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	for _, allowed := range validCaseTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidCaseStatus reports whether s names a known case status.
func ValidCaseStatus(s CaseStatus) bool {
	switch s {
	case CasePending, CaseActive, CaseCompleted, CaseSuspended:
		return true
	}
	return false
}

// AddressInfo is a postal address inside a client's personal record.
type AddressInfo struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

// PersonalInfo is the structured personal record captured at onboarding.
// All fields are optional; validation happens at the service boundary.
type PersonalInfo struct {
	Phone    string      `json:"phone,omitempty"`
	Address  AddressInfo `json:"address,omitempty"`
	SSNLast4 string      `json:"ssn_last4,omitempty"`
	DOB      string      `json:"dob,omitempty"`
}

// Client is a credit-repair case owned by the business. Created on
// onboarding, updated on status change, never hard-deleted.
type Client struct {
	ID                   string       `json:"id"`
	UserID               string       `json:"user_id"`
	CaseNumber           string       `json:"case_number"`
	Status               CaseStatus   `json:"status"`
	AssignedSpecialistID string       `json:"assigned_specialist_id,omitempty"`
	StartDate            string       `json:"start_date"`
	PackageType          string       `json:"package_type"`
	MonthlyFee           float64      `json:"monthly_fee"`
	ContractSigned       bool         `json:"contract_signed"`
	ContractSignedDate   string       `json:"contract_signed_date,omitempty"`
	PersonalInfo         PersonalInfo `json:"personal_info"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`

	// Joined relations, populated by the clients query.
	User               *User `json:"user,omitempty"`
	AssignedSpecialist *User `json:"assigned_specialist,omitempty"`
}
