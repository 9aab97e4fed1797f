package domain

// EducationSection is one titled block inside an article.
type EducationSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EducationContent is a static knowledge-base article served to clients.
type EducationContent struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Category     string             `json:"category"`
	Difficulty   string             `json:"difficulty"`
	ReadTime     string             `json:"read_time"`
	Introduction string             `json:"introduction"`
	Sections     []EducationSection `json:"sections"`
	KeyTakeaways []string           `json:"key_takeaways"`
}
