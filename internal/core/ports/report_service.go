package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// ClientProgress is one client's row on the dashboard and reports views.
type ClientProgress struct {
	ClientID           string `json:"client_id"`
	ClientName         string `json:"client_name"`
	CaseNumber         string `json:"case_number"`
	Status             string `json:"status"`
	CurrentScore       int    `json:"current_score"`
	InitialScore       int    `json:"initial_score"`
	Improvement        int    `json:"improvement"`
	ImprovementDisplay string `json:"improvement_display"`
	ItemsTotal         int    `json:"items_total"`
	ItemsRemoved       int    `json:"items_removed"`
}

// DashboardStats aggregates progress across the caseload.
type DashboardStats struct {
	TotalClients        int              `json:"total_clients"`
	ActiveClients       int              `json:"active_clients"`
	TotalNegativeItems  int              `json:"total_negative_items"`
	RemovedItems        int              `json:"removed_items"`
	AvgScoreImprovement float64          `json:"avg_score_improvement"`
	SuccessRate         int              `json:"success_rate"`
	Clients             []ClientProgress `json:"clients"`
}

// ReportService derives in-memory aggregates from the entity services.
type ReportService interface {
	Dashboard(ctx context.Context) domain.Result[*DashboardStats]
	ClientProgress(ctx context.Context, clientID string) domain.Result[*ClientProgress]
}

// EducationService serves the static knowledge-base catalog.
type EducationService interface {
	Catalog() []*domain.EducationContent
}
