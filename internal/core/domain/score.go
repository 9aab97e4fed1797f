package domain

import (
	"fmt"
	"time"
)

// CreditScore is one snapshot in a client's append-only score history.
// "current" is the latest snapshot by score date, "initial" the earliest.
type CreditScore struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	Equifax    int       `json:"equifax"`
	Experian   int       `json:"experian"`
	TransUnion int       `json:"transunion"`
	Average    int       `json:"average"`
	ScoreDate  string    `json:"score_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// AverageOf computes the derived bureau average, rounded to the nearest point.
func AverageOf(equifax, experian, transunion int) int {
	return (equifax + experian + transunion + 1) / 3
}

// ScoreDelta is the improvement between the initial and current snapshot.
type ScoreDelta struct {
	Initial *CreditScore `json:"initial,omitempty"`
	Current *CreditScore `json:"current,omitempty"`
	Points  int          `json:"points"`
}

// DeltaOf computes current.Average - initial.Average. A history with fewer
// than two snapshots has no measurable movement.
func DeltaOf(initial, current *CreditScore) ScoreDelta {
	d := ScoreDelta{Initial: initial, Current: current}
	if initial != nil && current != nil {
		d.Points = current.Average - initial.Average
	}
	return d
}

// Display renders the delta the way the dashboard shows it: "+24 points",
// "-10 points", or "No change" when the averages are equal.
func (d ScoreDelta) Display() string {
	if d.Points == 0 {
		return "No change"
	}
	return fmt.Sprintf("%+d points", d.Points)
}
