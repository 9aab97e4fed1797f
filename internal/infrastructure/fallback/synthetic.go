package fallback

import (
	"time"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// Synthetic records returned when a remote read fails and no bundled document
// covers the entity. Placeholder values match the shapes the UI expects.

// SyntheticScore returns a single plausible bureau snapshot for clientID.
func SyntheticScore(clientID string) *domain.CreditScore {
	now := time.Now().UTC()
	return &domain.CreditScore{
		ID:         "mock-score-" + clientID,
		ClientID:   clientID,
		Equifax:    650,
		Experian:   655,
		TransUnion: 645,
		Average:    650,
		ScoreDate:  now.Format("2006-01-02"),
		CreatedAt:  now,
	}
}

// SyntheticItem returns a single plausible negative item for clientID.
func SyntheticItem(clientID string) *domain.NegativeItem {
	now := time.Now().UTC()
	return &domain.NegativeItem{
		ID:            "mock-item-" + clientID,
		ClientID:      clientID,
		Type:          "Collection",
		Creditor:      "Sample Creditor",
		Account:       "ACC123456",
		Amount:        1500.00,
		Status:        domain.ItemPending,
		Bureau:        domain.BureauEquifax,
		DisputeReason: "Not mine",
		DateReported:  "2023-01-01",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SyntheticDocument returns a single plausible document reference.
// Empty clientID yields a global compliance document.
func SyntheticDocument(clientID string) *domain.Document {
	id := "mock-doc-all"
	if clientID != "" {
		id = "mock-doc-" + clientID
	}
	return &domain.Document{
		ID:         id,
		ClientID:   clientID,
		Name:       "Sample Document.pdf",
		Type:       "credit_report",
		FilePath:   "/mock/path/document.pdf",
		FileSize:   1024000,
		MimeType:   "application/pdf",
		UploadedBy: "mock-user",
		CreatedAt:  time.Now().UTC(),
	}
}

// SyntheticCommunication returns a single plausible welcome message.
func SyntheticCommunication(clientID string) *domain.Communication {
	return &domain.Communication{
		ID:       "mock-comm-" + clientID,
		ClientID: clientID,
		Type:     domain.CommEmail,
		Subject:  "Welcome to Credit Repair Services",
		Content:  "Thank you for choosing our credit repair services.",
		SentBy:   "mock-specialist",
		SentAt:   time.Now().UTC(),
		Status:   "sent",
	}
}
