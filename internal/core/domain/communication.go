package domain

import "time"

// Communication types.
const (
	CommEmail         = "email"
	CommSMS           = "sms"
	CommDisputeLetter = "dispute_letter"
	CommResponse      = "response"
)

// Communication is a message or letter recorded against a client.
type Communication struct {
	ID       string    `json:"id"`
	ClientID string    `json:"client_id"`
	Type     string    `json:"type"`
	Subject  string    `json:"subject"`
	Content  string    `json:"content"`
	SentBy   string    `json:"sent_by"`
	SentAt   time.Time `json:"sent_at"`
	Status   string    `json:"status"`
}

// ValidCommType reports whether t names a known communication type.
func ValidCommType(t string) bool {
	switch t {
	case CommEmail, CommSMS, CommDisputeLetter, CommResponse:
		return true
	}
	return false
}
