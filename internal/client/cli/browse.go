package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/jobtracker/internal/client/explorer"
	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// Apps reloads and prints the application list.
func (a *App) Apps(ctx context.Context) error {
	if err := a.explorer.LoadApplications(ctx); err != nil {
		return err
	}
	s := a.explorer.State()
	if len(s.Applications) == 0 {
		a.println("No applications yet. Use 'upload <dir>' to create one.")
		return nil
	}
	a.println(renderApplications(s.Applications))
	return nil
}

// Open selects an application and lists its root.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("open <app-id>")
	}
	ref, err := a.resolve("application", args[0])
	if err != nil {
		return err
	}
	if err := a.explorer.SelectNode(ctx, ref); err != nil {
		return err
	}
	return a.List(ctx)
}

// Cd moves within the current application: a folder id, ".." for the
// parent, "/" for the application root.
func (a *App) Cd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("cd <folder-id> | .. | /")
	}
	s := a.explorer.State()
	if s.Cursor.IsZero() {
		return common.ErrNoApplicationSelected
	}

	var err error
	switch args[0] {
	case "/":
		err = a.explorer.NavigateBreadcrumb(ctx, 0)
	case "..":
		if len(s.Breadcrumbs) < 2 {
			return nil
		}
		err = a.explorer.NavigateBreadcrumb(ctx, len(s.Breadcrumbs)-2)
	default:
		var ref tree.Ref
		if ref, err = a.resolve("folder", args[0]); err == nil {
			err = a.explorer.SelectNode(ctx, ref)
		}
	}
	if err != nil {
		return err
	}
	return a.List(ctx)
}

// Crumb prints the numbered breadcrumb path, or jumps to element n.
func (a *App) Crumb(ctx context.Context, args []string) error {
	s := a.explorer.State()
	if len(args) == 0 {
		if len(s.Breadcrumbs) == 0 {
			a.println("/")
			return nil
		}
		for i, c := range s.Breadcrumbs {
			a.printf("%d  %s\n", i, c.Name)
		}
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("crumb [n]")
	}
	if err := a.explorer.NavigateBreadcrumb(ctx, n); err != nil {
		return err
	}
	return a.List(ctx)
}

// List prints the folders and files at the cursor.
func (a *App) List(ctx context.Context) error {
	s := a.explorer.State()
	if s.Cursor.IsZero() {
		return a.Apps(ctx)
	}
	a.println(explorer.FormatCrumbs(s.Breadcrumbs))
	a.println(renderListing(s.Folders, s.Files, s.Selection))
	return nil
}

// Tree renders the application forest; "-a" ignores expansion flags.
func (a *App) Tree(ctx context.Context, args []string) error {
	all := len(args) > 0 && args[0] == "-a"
	a.println(renderTree(a.explorer.State(), all))
	return nil
}

func (a *App) Expand(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("expand <app|folder> <id>")
	}
	kind, err := tree.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err := a.explorer.ToggleExpansion(kind, id); err != nil {
		return err
	}
	a.println(renderTree(a.explorer.State(), false))
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.explorer.Refresh(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}
