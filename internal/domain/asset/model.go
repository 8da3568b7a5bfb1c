package asset

import "time"

// Status is the review state of an asset. The four values form a flat set:
// any status may transition to any other, there is no enforced ordering.
type Status string

const (
	StatusNeedsFeedback    Status = "needs_feedback"
	StatusInProgress       Status = "in_progress"
	StatusChangesRequested Status = "changes_requested"
	StatusFinal            Status = "final"
)

// Statuses lists every valid status value.
var Statuses = []Status{
	StatusNeedsFeedback,
	StatusInProgress,
	StatusChangesRequested,
	StatusFinal,
}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusNeedsFeedback, StatusInProgress, StatusChangesRequested, StatusFinal:
		return true
	}
	return false
}

// Asset is an uploaded design file under review within a project.
type Asset struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	UploaderID       string    `json:"uploader_id"`
	FilePath         string    `json:"file_path"`
	OriginalFilename string    `json:"original_filename"`
	Version          int       `json:"version"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
