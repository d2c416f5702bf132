package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// DefaultHistoryLimit is used when History is called with a non-positive limit.
const DefaultHistoryLimit = 50

// ChatResult is the reply to one message plus the ids of the documents
// indexed before sending it.
type ChatResult struct {
	Response   models.ChatResponse
	PreIndexed []int64
}

type ChatPanel interface {
	// Send optionally indexes the unindexed documents in listed, one at a
	// time, then sends message. Indexing failures are logged and skipped.
	Send(ctx context.Context, message string, listed []models.Document) (*ChatResult, error)
	History(ctx context.Context, limit int) ([]models.ChatMessage, error)
	Clear(ctx context.Context) error
	// Last returns the latest reply, or nil.
	Last() *models.ChatResponse
	Provider() string
	SetProvider(name string)
}

type chatPanel struct {
	client   client.Client
	logger   logging.Logger
	provider string
	preIndex bool

	mu   sync.Mutex
	last *models.ChatResponse
}

func NewChatPanel(c client.Client, logger logging.Logger, provider string, preIndex bool) ChatPanel {
	return &chatPanel{client: c, logger: logger, provider: provider, preIndex: preIndex}
}

func (p *chatPanel) Send(ctx context.Context, message string, listed []models.Document) (*ChatResult, error) {
	result := &ChatResult{}
	if p.preIndex {
		for _, d := range listed {
			if d.Indexed {
				continue
			}
			if err := p.client.IndexDocument(ctx, d.ID); err != nil {
				p.logger.Warn(ctx, "pre-index failed", "document_id", d.ID, "filename", d.Filename, "error", err)
				continue
			}
			result.PreIndexed = append(result.PreIndexed, d.ID)
		}
	}

	resp, err := p.client.SendChatMessage(ctx, message, p.Provider())
	if err != nil {
		return result, fmt.Errorf("send chat message: %w", err)
	}
	if resp.ActionTaken != nil {
		p.logger.Info(ctx, "assistant changed status",
			"company", resp.ActionTaken.Company,
			"status", resp.ActionTaken.NewStatus,
		)
	}

	p.mu.Lock()
	p.last = resp
	p.mu.Unlock()

	result.Response = *resp
	return result, nil
}

func (p *chatPanel) History(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	msgs, err := p.client.ChatHistory(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	return msgs, nil
}

func (p *chatPanel) Clear(ctx context.Context) error {
	if err := p.client.ClearChatHistory(ctx); err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	p.mu.Lock()
	p.last = nil
	p.mu.Unlock()
	return nil
}

func (p *chatPanel) Last() *models.ChatResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *chatPanel) Provider() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.provider
}

func (p *chatPanel) SetProvider(name string) {
	p.mu.Lock()
	p.provider = name
	p.mu.Unlock()
}
