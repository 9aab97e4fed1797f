package domain

import "time"

// ItemStatus represents the dispute lifecycle of a negative item.
type ItemStatus string

const (
	ItemPending    ItemStatus = "pending"
	ItemInProgress ItemStatus = "in_progress"
	ItemRemoved    ItemStatus = "removed"
	ItemVerified   ItemStatus = "verified"
)

// validItemTransitions defines the allowed state machine transitions.
// Removed and verified are terminal.
var validItemTransitions = map[ItemStatus][]ItemStatus{
	ItemPending:    {ItemInProgress},
	ItemInProgress: {ItemRemoved, ItemVerified},
}

// CanTransitionTo reports whether a transition from the current item status
// to next is valid.
func (s ItemStatus) CanTransitionTo(next ItemStatus) bool {
	for _, allowed := range validItemTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// The three major credit-reporting agencies.
const (
	BureauEquifax    = "Equifax"
	BureauExperian   = "Experian"
	BureauTransUnion = "TransUnion"
)

// NegativeItem is a disputed derogatory entry on a client's credit report.
type NegativeItem struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	Type          string     `json:"type"`
	Creditor      string     `json:"creditor"`
	Account       string     `json:"account"`
	Amount        float64    `json:"amount"`
	Status        ItemStatus `json:"status"`
	Bureau        string     `json:"bureau"`
	DisputeReason string     `json:"dispute_reason"`
	DateReported  string     `json:"date_reported"`
	DateRemoved   string     `json:"date_removed,omitempty"`
	LastDisputed  string     `json:"last_disputed,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ItemProgress summarizes dispute progress over a set of negative items.
type ItemProgress struct {
	Total      int `json:"total"`
	Removed    int `json:"removed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
	Verified   int `json:"verified"`
}

// ProgressOf tallies items by status.
func ProgressOf(items []*NegativeItem) ItemProgress {
	p := ItemProgress{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case ItemRemoved:
			p.Removed++
		case ItemInProgress:
			p.InProgress++
		case ItemVerified:
			p.Verified++
		default:
			p.Pending++
		}
	}
	return p
}

// SuccessRate returns removed/total as a percentage, 0 when there are no
// items.
func (p ItemProgress) SuccessRate() int {
	if p.Total == 0 {
		return 0
	}
	return int(float64(p.Removed) / float64(p.Total) * 100)
}
