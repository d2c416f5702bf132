package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Apps(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	Cd(ctx context.Context, args []string) error
	Crumb(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Tree(ctx context.Context, args []string) error
	Expand(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error

	Mkdir(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	Index(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error

	Multi(ctx context.Context) error
	Pick(ctx context.Context, args []string) error
	Selection(ctx context.Context) error
	BulkDelete(ctx context.Context) error
	BulkIndex(ctx context.Context) error

	View(ctx context.Context, args []string) error
	Detail(ctx context.Context, args []string) error
	Chat(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	ClearHistory(ctx context.Context) error

	AddColumn(ctx context.Context, args []string) error
	RemoveColumn(ctx context.Context, args []string) error
	Columns(ctx context.Context, args []string) error
	Report(ctx context.Context, args []string) error
	StatusReport(ctx context.Context) error
	Provider(ctx context.Context, args []string) error
}

const helpText = `Browsing:
  apps                         list applications
  open <app-id>                select an application
  cd <folder-id> | .. | /      change folder within the application
  crumb [n]                    show the path or jump to its n-th element
  ls                           list folders and files here
  tree [-a]                    show the folder tree (-a expands everything)
  expand <app|folder> <id>     expand or collapse a tree node
  refresh                      reload everything
Changes:
  mkdir <name>                 create a folder here
  rename <app|folder> <id> <name>
  rm <app|folder|file> <id>
  mv <folder|file> <id> <app|folder> <id>
  index <folder|file> <id>
  status <app-id> <status> [notes]
  upload <path>...             upload files or directories
Multi-select:
  multi                        toggle multi-select mode
  pick <folder|file|app> <id>  add or remove an item
  selection                    show selected items
  bulkrm | bulkindex           delete or index every selected item
Documents, chat and reports:
  view <file-id>               show a document's text
  detail <app-id>              documents and status history
  chat <message>               ask the assistant
  history [n] | clearhistory
  addcol <type> <name>         add a report column (prompted for the question)
  rmcol <name>
  cols [col...]                show or choose the base report columns
  report [csv [file]]          generate a report, optionally export it
  statusreport
  provider [name]              show or switch the LLM provider
  exit | quit`

// runREPL starts a read–eval–print loop for the jobtracker CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches the rest as arguments. Errors returned by handlers are
// printed and the loop continues. The loop exits on EOF, on "exit" or
// "quit", or when ctx is done.
//
// When statusFn is nil no prompt is printed, which keeps piped output
// clean.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if statusFn != nil {
			printlnFn(fmt.Sprintf("jt %s > ", statusFn()))
		}
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)

		case "apps":
			cmdErr = a.Apps(ctx)
		case "open":
			cmdErr = a.Open(ctx, args)
		case "cd":
			cmdErr = a.Cd(ctx, args)
		case "crumb":
			cmdErr = a.Crumb(ctx, args)
		case "l", "ls":
			cmdErr = a.List(ctx)
		case "tree":
			cmdErr = a.Tree(ctx, args)
		case "expand":
			cmdErr = a.Expand(ctx, args)
		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "mkdir":
			cmdErr = a.Mkdir(ctx, args)
		case "rename":
			cmdErr = a.Rename(ctx, args)
		case "rm":
			cmdErr = a.Remove(ctx, args)
		case "mv":
			cmdErr = a.Move(ctx, args)
		case "index":
			cmdErr = a.Index(ctx, args)
		case "status":
			cmdErr = a.Status(ctx, args)
		case "upload":
			cmdErr = a.Upload(ctx, args)

		case "multi":
			cmdErr = a.Multi(ctx)
		case "pick":
			cmdErr = a.Pick(ctx, args)
		case "selection":
			cmdErr = a.Selection(ctx)
		case "bulkrm":
			cmdErr = a.BulkDelete(ctx)
		case "bulkindex":
			cmdErr = a.BulkIndex(ctx)

		case "view":
			cmdErr = a.View(ctx, args)
		case "detail":
			cmdErr = a.Detail(ctx, args)
		case "chat":
			cmdErr = a.Chat(ctx, args)
		case "history":
			cmdErr = a.History(ctx, args)
		case "clearhistory":
			cmdErr = a.ClearHistory(ctx)

		case "addcol":
			cmdErr = a.AddColumn(ctx, args)
		case "rmcol":
			cmdErr = a.RemoveColumn(ctx, args)
		case "cols":
			cmdErr = a.Columns(ctx, args)
		case "report":
			cmdErr = a.Report(ctx, args)
		case "statusreport":
			cmdErr = a.StatusReport(ctx)
		case "provider":
			cmdErr = a.Provider(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
