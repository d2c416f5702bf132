package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/config"
	"github.com/dmitrijs2005/jobtracker/internal/client/explorer"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	client   client.Client
	explorer *explorer.Manager
	viewer   services.DocumentViewer
	chat     services.ChatPanel
	reports  services.ReportService
	uploads  services.UploadService

	reader *bufio.Reader
	out    io.Writer

	// lastReport is kept for "report csv" after "report".
	lastReport *models.Report
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}
	return newApp(c, logger, apiClient, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, apiClient client.Client, in *bufio.Reader, out io.Writer) *App {
	builder := tree.NewBuilder(apiClient, logger, c.MaxTreeDepth)
	return &App{
		config:   c,
		logger:   logger,
		client:   apiClient,
		explorer: explorer.NewManager(apiClient, builder, logger),
		viewer:   services.NewDocumentViewer(apiClient, logger),
		chat:     services.NewChatPanel(apiClient, logger, c.Provider, c.PreIndexOnChat),
		reports:  services.NewReportService(apiClient, c.Provider),
		uploads:  services.NewUploadService(),
		reader:   in,
		out:      out,
	}
}

// Run loads the application list and serves the REPL until EOF, "exit" or
// ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info(ctx, "starting", "server", a.config.ServerURL, "provider", a.config.Provider)
	fmt.Fprintln(a.out, "jobtracker CLI (type 'help' for commands)")

	if err := a.explorer.LoadApplications(ctx); err != nil {
		a.logger.Error(ctx, "could not load applications", "error", err)
		fmt.Fprintln(a.out, "error:", err)
	}

	statusFn := a.status
	if !isTerminal(int(os.Stdin.Fd())) {
		statusFn = nil
	}
	runREPL(ctx, a, statusFn, a.reader)
	return nil
}

// status is shown in the prompt: the breadcrumb path and, in multi-select
// mode, the selection size.
func (a *App) status() string {
	s := a.explorer.State()
	st := explorer.FormatCrumbs(s.Breadcrumbs)
	if st == "" {
		st = "/"
	}
	if s.MultiSelect {
		st += fmt.Sprintf(" [multi:%d]", s.Selection.Len())
	}
	return st
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
