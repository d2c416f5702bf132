package models

import (
	"io"

	"github.com/dmitrijs2005/jobtracker/internal/timex"
)

// Document is an uploaded file. FolderID nil means the application root.
type Document struct {
	ID            int64           `json:"id"`
	ApplicationID int64           `json:"application_id"`
	FolderID      *int64          `json:"folder_id"`
	Filename      string          `json:"filename"`
	DocType       *string         `json:"doc_type"`
	Indexed       bool            `json:"indexed"`
	CreatedAt     timex.Timestamp `json:"created_at"`
}

// InFolder reports whether d sits directly in folderID (nil = root).
func (d Document) InFolder(folderID *int64) bool {
	if folderID == nil {
		return d.FolderID == nil
	}
	return d.FolderID != nil && *d.FolderID == *folderID
}

// UploadFile is one part of a multipart upload. Name may contain a relative
// path; the backend recreates the folders it names.
type UploadFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// UploadRequest describes a single, multi or folder upload. When
// ApplicationID is nil the backend creates a new application named
// CompanyName.
type UploadRequest struct {
	Files         []UploadFile
	ApplicationID *int64
	CompanyName   string
}

// UploadSummary is the backend's report of an upload.
type UploadSummary struct {
	Message       string     `json:"message"`
	ApplicationID *int64     `json:"application_id"`
	Files         []Document `json:"files"`
	Errors        []string   `json:"errors"`
}
