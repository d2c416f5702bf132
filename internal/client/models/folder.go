package models

import "github.com/dmitrijs2005/jobtracker/internal/timex"

// Folder is a node of the folder tree scoped to one application.
type Folder struct {
	ID            int64           `json:"id"`
	ApplicationID int64           `json:"application_id"`
	Name          string          `json:"name"`
	ParentID      *int64          `json:"parent_id"` // nil = application root
	Path          string          `json:"path,omitempty"`
	Level         int             `json:"level"`
	CreatedAt     timex.Timestamp `json:"created_at"`
}
