package domain

import "time"

// Document is a stored file reference. ClientID is empty for global
// compliance documents visible to staff.
type Document struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id,omitempty"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	FilePath   string    `json:"file_path"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}
