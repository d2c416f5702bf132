package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// RequestIDHeader carries a per-request correlation id to the backend.
const RequestIDHeader = "X-Request-ID"

// HTTPClient implements Client over the backend's REST/JSON API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the API rooted at baseURL
// (e.g. "http://localhost:8000/api").
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// ---- applications ----

func (c *HTTPClient) ListApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := c.doJSON(ctx, http.MethodGet, "/applications/overview", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *HTTPClient) GetApplication(ctx context.Context, id int64) (*models.ApplicationDetail, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var detail models.ApplicationDetail
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/applications/%d", id), nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *HTTPClient) DeleteApplication(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/applications/%d", id), nil, nil, nil)
}

func (c *HTTPClient) RenameApplication(ctx context.Context, id int64, newName string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateName(newName); err != nil {
		return err
	}
	body := map[string]string{"new_name": newName}
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/applications/%d/rename", id), nil, body, nil)
}

func (c *HTTPClient) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus, notes string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateStatus(status); err != nil {
		return err
	}
	body := struct {
		Status models.ApplicationStatus `json:"status"`
		Notes  string                   `json:"notes,omitempty"`
	}{status, notes}
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/applications/%d/status", id), nil, body, nil)
}

// ---- folders ----

func (c *HTTPClient) ListFolders(ctx context.Context, applicationID int64, parentID *int64) ([]models.Folder, error) {
	if err := validateID(applicationID); err != nil {
		return nil, err
	}
	q := url.Values{}
	if parentID != nil {
		q.Set("parent_id", strconv.FormatInt(*parentID, 10))
	}
	var folders []models.Folder
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/applications/%d/folders", applicationID), q, nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (c *HTTPClient) CreateFolder(ctx context.Context, applicationID int64, name string, parentID *int64) (*models.Folder, error) {
	if err := validateID(applicationID); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	body := struct {
		Name     string `json:"name"`
		ParentID *int64 `json:"parent_id,omitempty"`
	}{name, parentID}
	var folder models.Folder
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/applications/%d/folders", applicationID), nil, body, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (c *HTTPClient) RenameFolder(ctx context.Context, id int64, newName string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateName(newName); err != nil {
		return err
	}
	body := map[string]string{"new_name": newName}
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/folders/%d/rename", id), nil, body, nil)
}

func (c *HTTPClient) MoveFolder(ctx context.Context, id int64, targetParentID *int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	body := struct {
		TargetParentID *int64 `json:"target_parent_id"`
	}{targetParentID}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/folders/%d/move", id), nil, body, nil)
}

func (c *HTTPClient) DeleteFolder(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/folders/%d", id), nil, nil, nil)
}

func (c *HTTPClient) IndexFolder(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/folders/%d/index-all", id), nil, nil, nil)
}

// ---- documents ----

func (c *HTTPClient) ListFiles(ctx context.Context, applicationID *int64) ([]models.Document, error) {
	q := url.Values{}
	if applicationID != nil {
		q.Set("application_id", strconv.FormatInt(*applicationID, 10))
	}
	var resp struct {
		Files []models.Document `json:"files"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/applications/files/list", q, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Files == nil {
		resp.Files = []models.Document{}
	}
	return resp.Files, nil
}

func (c *HTTPClient) UploadFiles(ctx context.Context, req models.UploadRequest) (*models.UploadSummary, error) {
	if err := validateUpload(req); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range req.Files {
		if err := writeFilePart(mw, f); err != nil {
			return nil, fmt.Errorf("prepare upload of %s: %w", f.Name, err)
		}
	}
	if req.ApplicationID != nil {
		if err := mw.WriteField("application_id", strconv.FormatInt(*req.ApplicationID, 10)); err != nil {
			return nil, err
		}
	}
	if req.CompanyName != "" {
		if err := mw.WriteField("company_name", req.CompanyName); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var summary models.UploadSummary
	if err := c.do(ctx, http.MethodPost, "/applications/files/upload", nil, &buf, mw.FormDataContentType(), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func writeFilePart(mw *multipart.Writer, f models.UploadFile) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	part, err := mw.CreateFormFile("files", f.Name)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, rc)
	return err
}

func (c *HTTPClient) IndexDocument(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/documents/%d/index", id), nil, nil, nil)
}

func (c *HTTPClient) MoveDocument(ctx context.Context, applicationID, id int64, targetFolderID *int64) error {
	if err := validateID(applicationID); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	body := struct {
		TargetFolderID *int64 `json:"target_folder_id"`
	}{targetFolderID}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/applications/%d/documents/%d/move", applicationID, id), nil, body, nil)
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, applicationID, id int64) error {
	if err := validateID(applicationID); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/applications/%d/documents/%d", applicationID, id), nil, nil, nil)
}

func (c *HTTPClient) GetDocumentContent(ctx context.Context, applicationID, id int64) (string, error) {
	if err := validateID(applicationID); err != nil {
		return "", err
	}
	if err := validateID(id); err != nil {
		return "", err
	}
	var resp struct {
		Content string `json:"content"`
	}
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/applications/%d/documents/%d/content", applicationID, id), nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Content, nil
}

// ---- chat & reports ----

func (c *HTTPClient) SendChatMessage(ctx context.Context, message, provider string) (*models.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is empty", common.ErrorValidation)
	}
	body := map[string]string{"message": message, "provider": provider}
	var resp models.ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/applications/chat/message", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ChatHistory(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var msgs []models.ChatMessage
	if err := c.doJSON(ctx, http.MethodGet, "/applications/chat/history", q, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *HTTPClient) ClearChatHistory(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/applications/chat/history", nil, nil, nil)
}

func (c *HTTPClient) GenerateReport(ctx context.Context, req models.ReportRequest) (*models.Report, error) {
	if err := invalid(req.Validate()); err != nil {
		return nil, err
	}
	if req.CustomColumns == nil {
		req.CustomColumns = []models.CustomColumn{}
	}
	var report models.Report
	if err := c.doJSON(ctx, http.MethodPost, "/applications/reports/generate", nil, req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *HTTPClient) StatusReport(ctx context.Context) (*models.StatusReport, error) {
	var report models.StatusReport
	if err := c.doJSON(ctx, http.MethodGet, "/applications/reports/status", nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ---- transport ----

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, body, contentType, out)
}

// do sends one request and decodes a 2xx body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug(ctx, "request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start),
	)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Detail: errorDetail(respBody)}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
