package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationStatus_Valid(t *testing.T) {
	for _, s := range ApplicationStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ApplicationStatus("ghosted").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestDocument_InFolder(t *testing.T) {
	ten, eleven := int64(10), int64(11)

	root := Document{ID: 1}
	inTen := Document{ID: 2, FolderID: &ten}

	assert.True(t, root.InFolder(nil))
	assert.False(t, root.InFolder(&ten))
	assert.True(t, inTen.InFolder(&ten))
	assert.False(t, inTen.InFolder(&eleven))
	assert.False(t, inTen.InFolder(nil))
}

func TestFolder_DecodeBackendPayload(t *testing.T) {
	payload := `{"id":10,"application_id":1,"name":"Resumes","parent_id":null,"path":"Resumes","level":0,"created_at":"2024-05-01T09:00:00"}`

	var f Folder
	require.NoError(t, json.Unmarshal([]byte(payload), &f))

	assert.Equal(t, int64(10), f.ID)
	assert.Nil(t, f.ParentID)
	assert.Equal(t, 2024, f.CreatedAt.Year())
}

func TestReportRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ReportRequest
		wantErr bool
	}{
		{
			name: "base columns only",
			req:  ReportRequest{Columns: DefaultReportColumns, Provider: "ollama"},
		},
		{
			name: "valid custom column",
			req: ReportRequest{
				Columns:       []string{"company_name"},
				CustomColumns: []CustomColumn{{Name: "salary", Type: ColumnNumber, Prompt: "Expected salary?"}},
				Provider:      "ollama",
			},
		},
		{
			name:    "unknown base column",
			req:     ReportRequest{Columns: []string{"shoe_size"}, Provider: "ollama"},
			wantErr: true,
		},
		{
			name: "custom column without prompt",
			req: ReportRequest{
				CustomColumns: []CustomColumn{{Name: "salary", Type: ColumnNumber}},
				Provider:      "ollama",
			},
			wantErr: true,
		},
		{
			name: "custom column with bad type",
			req: ReportRequest{
				CustomColumns: []CustomColumn{{Name: "salary", Type: "money", Prompt: "?"}},
				Provider:      "ollama",
			},
			wantErr: true,
		},
		{
			name:    "missing provider",
			req:     ReportRequest{Columns: DefaultReportColumns},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProvider(t *testing.T) {
	for _, p := range Providers {
		assert.NoError(t, ValidateProvider(p), p)
	}
	assert.Error(t, ValidateProvider(""))
	assert.Error(t, ValidateProvider("openai"))
}
