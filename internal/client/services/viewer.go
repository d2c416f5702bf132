package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// NoContent is shown for documents whose extracted text is empty.
const NoContent = "No content available"

type ViewStatus int

const (
	ViewIdle ViewStatus = iota
	ViewLoading
	ViewLoaded
	ViewError
)

func (s ViewStatus) String() string {
	switch s {
	case ViewIdle:
		return "idle"
	case ViewLoading:
		return "loading"
	case ViewLoaded:
		return "loaded"
	case ViewError:
		return "error"
	default:
		return fmt.Sprintf("ViewStatus(%d)", int(s))
	}
}

// DocumentView is the viewer's state for the most recently opened document.
type DocumentView struct {
	Status        ViewStatus
	ApplicationID int64
	DocumentID    int64
	Content       string
	Err           string
}

type DocumentViewer interface {
	// Open loads a document's text. If another Open starts before this one
	// finishes, this result is discarded and common.ErrSuperseded returned.
	Open(ctx context.Context, applicationID, documentID int64) (DocumentView, error)
	Current() DocumentView
	Close()
}

type documentViewer struct {
	client client.Client
	logger logging.Logger

	mu   sync.Mutex
	gen  uint64
	view DocumentView
}

func NewDocumentViewer(c client.Client, logger logging.Logger) DocumentViewer {
	return &documentViewer{client: c, logger: logger}
}

func (v *documentViewer) Open(ctx context.Context, applicationID, documentID int64) (DocumentView, error) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.view = DocumentView{Status: ViewLoading, ApplicationID: applicationID, DocumentID: documentID}
	v.mu.Unlock()

	content, err := v.client.GetDocumentContent(ctx, applicationID, documentID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		v.logger.Debug(ctx, "discarding stale document", "document_id", documentID)
		return v.view, common.ErrSuperseded
	}
	if err != nil {
		v.view.Status = ViewError
		v.view.Err = err.Error()
		return v.view, fmt.Errorf("load document %d: %w", documentID, err)
	}
	if content == "" {
		content = NoContent
	}
	v.view.Status = ViewLoaded
	v.view.Content = content
	return v.view, nil
}

func (v *documentViewer) Current() DocumentView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}

// Close returns the viewer to idle and invalidates any in-flight Open.
func (v *documentViewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.view = DocumentView{}
}
