package service

import "github.com/creditfix/credit-repair-api/internal/core/domain"

// EducationService serves the static knowledge-base catalog. The content is
// compiled in; there is no education table in the backend yet.
type EducationService struct {
	catalog []*domain.EducationContent
}

func NewEducationService() *EducationService {
	return &EducationService{catalog: educationCatalog}
}

func (s *EducationService) Catalog() []*domain.EducationContent {
	return s.catalog
}

var educationCatalog = []*domain.EducationContent{
	{
		ID:           "credit-basics",
		Title:        "Understanding Credit Basics",
		Category:     "Credit Fundamentals",
		Difficulty:   "Beginner",
		ReadTime:     "5 min",
		Introduction: "Your credit score is one of the most important financial numbers in your life. It affects your ability to get loans, credit cards, and even rent an apartment.",
		Sections: []domain.EducationSection{
			{
				Title:   "What is a Credit Score?",
				Content: "A credit score is a three-digit number that represents your creditworthiness. Scores typically range from 300 to 850, with higher scores indicating better credit.",
			},
			{
				Title:   "Credit Score Ranges",
				Content: "Excellent: 750-850. Good: 700-749. Fair: 650-699. Poor: 600-649. Bad: below 600.",
			},
			{
				Title:   "Who Creates Credit Scores?",
				Content: "The most common credit scores are FICO scores and VantageScore. These are calculated using information from your credit reports from the three major credit bureaus: Equifax, Experian, and TransUnion.",
			},
		},
		KeyTakeaways: []string{
			"Credit scores range from 300-850",
			"Higher scores mean better credit terms",
			"Multiple scoring models exist",
			"Scores are based on credit report data",
		},
	},
	{
		ID:           "credit-factors",
		Title:        "Factors That Affect Your Credit Score",
		Category:     "Credit Fundamentals",
		Difficulty:   "Beginner",
		ReadTime:     "7 min",
		Introduction: "Understanding what factors influence your credit score is crucial for improving and maintaining good credit.",
		Sections: []domain.EducationSection{
			{
				Title:   "Payment History (35%)",
				Content: "This is the most important factor. It covers on-time payments versus late payments, how late they were, how recently they occurred, and accounts in collections or charged off.",
			},
			{
				Title:   "Credit Utilization (30%)",
				Content: "This measures how much credit you are using. Keep utilization below 30%; lower is better, and both individual and overall utilization matter.",
			},
			{
				Title:   "Length of Credit History (15%)",
				Content: "This covers the age of your oldest account, the average age of all accounts, and how long since you have used them.",
			},
		},
		KeyTakeaways: []string{
			"Payment history is most important (35%)",
			"Keep credit utilization low",
			"Maintain older accounts",
			"Don't apply for too much new credit",
		},
	},
	{
		ID:           "dispute-process",
		Title:        "How the Dispute Process Works",
		Category:     "Credit Repair",
		Difficulty:   "Intermediate",
		ReadTime:     "8 min",
		Introduction: "Disputing inaccurate negative items is the core of credit repair. Knowing what the bureaus must do with your dispute helps you set expectations.",
		Sections: []domain.EducationSection{
			{
				Title:   "Filing a Dispute",
				Content: "A dispute letter identifies the item, the bureau reporting it, and the reason it is inaccurate. Each bureau must investigate, usually within 30 days.",
			},
			{
				Title:   "Possible Outcomes",
				Content: "An item is removed when the furnisher cannot verify it, or verified when the furnisher confirms it. Verified items can be disputed again with new evidence.",
			},
		},
		KeyTakeaways: []string{
			"Bureaus must investigate disputes, typically within 30 days",
			"Unverifiable items must be removed",
			"Verified items can be re-disputed with new evidence",
		},
	},
}
