// Package models defines the records exchanged with the jobtracker backend.
package models

import (
	"github.com/dmitrijs2005/jobtracker/internal/timex"
)

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusUploaded      ApplicationStatus = "uploaded"
	StatusApplied       ApplicationStatus = "applied"
	StatusScreening     ApplicationStatus = "screening"
	StatusInterview     ApplicationStatus = "interview"
	StatusTechnicalTest ApplicationStatus = "technical_test"
	StatusOffer         ApplicationStatus = "offer"
	StatusRejected      ApplicationStatus = "rejected"
	StatusAccepted      ApplicationStatus = "accepted"
	StatusWithdrawn     ApplicationStatus = "withdrawn"
)

// ApplicationStatuses lists every status the backend accepts, in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusUploaded,
	StatusApplied,
	StatusScreening,
	StatusInterview,
	StatusTechnicalTest,
	StatusOffer,
	StatusRejected,
	StatusAccepted,
	StatusWithdrawn,
}

// Valid reports whether s is one of ApplicationStatuses.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application is the root container of a folder/document hierarchy.
type Application struct {
	ID            int64             `json:"id"`
	CompanyName   string            `json:"company_name"`
	Position      *string           `json:"position"`
	Status        ApplicationStatus `json:"status"`
	DocumentCount int               `json:"document_count"`
	CreatedAt     timex.Timestamp   `json:"created_at"`
}

// StatusChange is one entry of an application's status history.
type StatusChange struct {
	ID        int64           `json:"id"`
	OldStatus *string         `json:"old_status"`
	NewStatus string          `json:"new_status"`
	Notes     *string         `json:"notes"`
	ChangedAt timex.Timestamp `json:"changed_at"`
}

// ApplicationDetail is the response of GET /applications/{id}.
type ApplicationDetail struct {
	Documents     []Document     `json:"documents"`
	StatusHistory []StatusChange `json:"status_history"`
}
