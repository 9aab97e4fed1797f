package domain

import "time"

// DisputeTemplate is a reusable letter body keyed by category, independent of
// any client.
type DisputeTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Dispute statuses shown on the dispute management view.
const (
	DisputePending    = "pending"
	DisputeInProgress = "in_progress"
	DisputeCompleted  = "completed"
	DisputeRejected   = "rejected"
)

// Dispute is a read view derived from a negative item joined with its
// client's user record; it is never stored.
type Dispute struct {
	ID            string  `json:"id"`
	ClientID      string  `json:"client_id"`
	ClientName    string  `json:"client_name"`
	Type          string  `json:"type"`
	Creditor      string  `json:"creditor"`
	Account       string  `json:"account"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Bureau        string  `json:"bureau"`
	DisputeReason string  `json:"dispute_reason"`
	DateSent      string  `json:"date_sent"`
	ResponseDate  string  `json:"response_date,omitempty"`
	TemplateUsed  string  `json:"template_used"`
}

// DisputeStatusOf maps an item's dispute lifecycle onto the view statuses:
// removed reads as completed, verified as rejected.
func DisputeStatusOf(s ItemStatus) string {
	switch s {
	case ItemRemoved:
		return DisputeCompleted
	case ItemVerified:
		return DisputeRejected
	case ItemInProgress:
		return DisputeInProgress
	default:
		return DisputePending
	}
}
