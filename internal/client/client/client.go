package client

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// Client is the typed contract of the jobtracker backend. It shapes
// requests and decodes responses; it holds no state beyond the connection.
type Client interface {
	ListApplications(ctx context.Context) ([]models.Application, error)
	GetApplication(ctx context.Context, id int64) (*models.ApplicationDetail, error)
	DeleteApplication(ctx context.Context, id int64) error
	RenameApplication(ctx context.Context, id int64, newName string) error
	UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus, notes string) error

	ListFolders(ctx context.Context, applicationID int64, parentID *int64) ([]models.Folder, error)
	CreateFolder(ctx context.Context, applicationID int64, name string, parentID *int64) (*models.Folder, error)
	RenameFolder(ctx context.Context, id int64, newName string) error
	MoveFolder(ctx context.Context, id int64, targetParentID *int64) error
	DeleteFolder(ctx context.Context, id int64) error
	IndexFolder(ctx context.Context, id int64) error

	ListFiles(ctx context.Context, applicationID *int64) ([]models.Document, error)
	UploadFiles(ctx context.Context, req models.UploadRequest) (*models.UploadSummary, error)
	IndexDocument(ctx context.Context, id int64) error
	MoveDocument(ctx context.Context, applicationID, id int64, targetFolderID *int64) error
	DeleteDocument(ctx context.Context, applicationID, id int64) error
	GetDocumentContent(ctx context.Context, applicationID, id int64) (string, error)

	SendChatMessage(ctx context.Context, message, provider string) (*models.ChatResponse, error)
	ChatHistory(ctx context.Context, limit int) ([]models.ChatMessage, error)
	ClearChatHistory(ctx context.Context) error

	GenerateReport(ctx context.Context, req models.ReportRequest) (*models.Report, error)
	StatusReport(ctx context.Context) (*models.StatusReport, error)
}
