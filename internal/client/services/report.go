package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

type ReportService interface {
	// AddColumn registers an LLM-derived column. The name is normalized
	// with NormalizeColumnName.
	AddColumn(name string, typ models.ColumnType, prompt string) (models.CustomColumn, error)
	RemoveColumn(name string) bool
	CustomColumns() []models.CustomColumn
	// SetBaseColumns chooses the base columns used when Generate is called
	// with nil columns. Every name must be one of BaseReportColumns.
	SetBaseColumns(columns []string) error
	BaseColumns() []string
	// Generate builds a report of the given base columns plus every
	// registered custom column. Nil columns means the chosen base columns,
	// initially DefaultReportColumns.
	Generate(ctx context.Context, columns []string) (*models.Report, error)
	Status(ctx context.Context) (*models.StatusReport, error)
	Provider() string
	SetProvider(name string)
}

type reportService struct {
	client client.Client

	mu       sync.Mutex
	provider string
	base     []string
	custom   []models.CustomColumn
}

func NewReportService(c client.Client, provider string) ReportService {
	base := make([]string, len(models.DefaultReportColumns))
	copy(base, models.DefaultReportColumns)
	return &reportService{client: c, provider: provider, base: base}
}

// NormalizeColumnName trims name, lower-cases it and replaces runs of
// whitespace with a single underscore.
func NormalizeColumnName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

func (s *reportService) AddColumn(name string, typ models.ColumnType, prompt string) (models.CustomColumn, error) {
	col := models.CustomColumn{
		Name:   NormalizeColumnName(name),
		Type:   typ,
		Prompt: strings.TrimSpace(prompt),
	}
	if err := col.Validate(); err != nil {
		return models.CustomColumn{}, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.custom {
		if c.Name == col.Name {
			return models.CustomColumn{}, fmt.Errorf("%w: column %q already exists", common.ErrorValidation, col.Name)
		}
	}
	s.custom = append(s.custom, col)
	return col, nil
}

func (s *reportService) RemoveColumn(name string) bool {
	name = NormalizeColumnName(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.custom {
		if c.Name == name {
			s.custom = append(s.custom[:i:i], s.custom[i+1:]...)
			return true
		}
	}
	return false
}

func (s *reportService) CustomColumns() []models.CustomColumn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CustomColumn, len(s.custom))
	copy(out, s.custom)
	return out
}

func (s *reportService) SetBaseColumns(columns []string) error {
	seen := make(map[string]bool, len(columns))
	base := make([]string, 0, len(columns))
	for _, c := range columns {
		name := NormalizeColumnName(c)
		if !slices.Contains(models.BaseReportColumns, name) {
			return fmt.Errorf("%w: unknown column %q", common.ErrorValidation, c)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		base = append(base, name)
	}

	s.mu.Lock()
	s.base = base
	s.mu.Unlock()
	return nil
}

func (s *reportService) BaseColumns() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.base)
}

func (s *reportService) Provider() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider
}

func (s *reportService) SetProvider(name string) {
	s.mu.Lock()
	s.provider = name
	s.mu.Unlock()
}

func (s *reportService) Generate(ctx context.Context, columns []string) (*models.Report, error) {
	if columns == nil {
		columns = s.BaseColumns()
	}
	req := models.ReportRequest{
		Columns:       columns,
		CustomColumns: s.CustomColumns(),
		Provider:      s.Provider(),
	}
	r, err := s.client.GenerateReport(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}
	return r, nil
}

func (s *reportService) Status(ctx context.Context) (*models.StatusReport, error) {
	r, err := s.client.StatusReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("status report: %w", err)
	}
	return r, nil
}

// ReportFileName is the default export name, e.g. "report_2024-05-01.csv".
func ReportFileName(now time.Time) string {
	return "report_" + now.Format("2006-01-02") + ".csv"
}

// WriteCSV writes r with a header row of column names. Missing and null
// cells are empty; fields containing a comma, quote or newline are quoted.
func WriteCSV(w io.Writer, r *models.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Columns); err != nil {
		return err
	}
	record := make([]string, len(r.Columns))
	for _, row := range r.Rows {
		for i, col := range r.Columns {
			record[i] = FormatCell(row[col])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatCell renders a decoded JSON value for display or export.
func FormatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
