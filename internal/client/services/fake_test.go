package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

var errBackend = errors.New("backend down")

// fakeClient implements client.Client for service tests. Only the methods
// the services call are overridden.
type fakeClient struct {
	client.Client

	// GetDocumentContent
	content    map[int64]string
	contentErr error
	// block, when set, is waited on before returning content
	block chan struct{}

	// IndexDocument
	indexErr map[int64]error
	indexed  []int64

	// chat
	chatResp    *models.ChatResponse
	chatErr     error
	lastMessage string
	lastProv    string
	history     []models.ChatMessage
	lastLimit   int
	cleared     bool

	// reports
	report    *models.Report
	lastRep   models.ReportRequest
	statusRep *models.StatusReport
}

func (f *fakeClient) GetDocumentContent(ctx context.Context, applicationID, id int64) (string, error) {
	if f.block != nil {
		<-f.block
	}
	if f.contentErr != nil {
		return "", f.contentErr
	}
	return f.content[id], nil
}

func (f *fakeClient) IndexDocument(ctx context.Context, id int64) error {
	if err := f.indexErr[id]; err != nil {
		return err
	}
	f.indexed = append(f.indexed, id)
	return nil
}

func (f *fakeClient) SendChatMessage(ctx context.Context, message, provider string) (*models.ChatResponse, error) {
	f.lastMessage, f.lastProv = message, provider
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	return f.chatResp, nil
}

func (f *fakeClient) ChatHistory(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	f.lastLimit = limit
	return f.history, nil
}

func (f *fakeClient) ClearChatHistory(ctx context.Context) error {
	f.cleared = true
	return nil
}

func (f *fakeClient) GenerateReport(ctx context.Context, req models.ReportRequest) (*models.Report, error) {
	f.lastRep = req
	return f.report, nil
}

func (f *fakeClient) StatusReport(ctx context.Context) (*models.StatusReport, error) {
	return f.statusRep, nil
}
