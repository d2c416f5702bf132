package models

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BaseReportColumns are the application attributes a report can include
// without asking the LLM.
var BaseReportColumns = []string{
	"company_name",
	"position",
	"status",
	"document_count",
	"created_at",
	"updated_at",
	"notes",
}

// DefaultReportColumns is the column set a new report starts with.
var DefaultReportColumns = []string{"company_name", "position", "status", "document_count"}

// ColumnType is the value type of an LLM-derived report column.
type ColumnType string

const (
	ColumnText   ColumnType = "text"
	ColumnNumber ColumnType = "number"
	ColumnDate   ColumnType = "date"
	ColumnStatus ColumnType = "status"
)

// CustomColumn is a report column whose value the backend extracts with
// the LLM using Prompt.
type CustomColumn struct {
	Name   string     `json:"name"`
	Type   ColumnType `json:"type"`
	Prompt string     `json:"prompt"`
}

func (c CustomColumn) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Type, validation.Required, validation.In(ColumnText, ColumnNumber, ColumnDate, ColumnStatus)),
		validation.Field(&c.Prompt, validation.Required),
	)
}

type ReportRequest struct {
	Columns       []string       `json:"columns"`
	CustomColumns []CustomColumn `json:"custom_columns"`
	Provider      string         `json:"provider"`
}

func (r ReportRequest) Validate() error {
	allowed := make([]interface{}, len(BaseReportColumns))
	for i, c := range BaseReportColumns {
		allowed[i] = c
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Columns, validation.Each(validation.In(allowed...))),
		validation.Field(&r.CustomColumns),
		validation.Field(&r.Provider, validation.Required),
	)
}

// Report is a generated table. Rows are keyed by column name.
type Report struct {
	Columns   []string         `json:"columns"`
	Rows      []map[string]any `json:"rows"`
	TotalRows int              `json:"total_rows"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusReport is the response of GET /applications/reports/status.
type StatusReport struct {
	TotalApplications  int               `json:"total_applications"`
	StatusDistribution []StatusCount     `json:"status_distribution"`
	RecentChanges      []json.RawMessage `json:"recent_changes"`
}
