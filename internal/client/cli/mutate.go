package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

func (a *App) Mkdir(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("mkdir <name>")
	}
	f, err := a.explorer.CreateFolder(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printf("Created folder %q (#%d)\n", f.Name, f.ID)
	return a.List(ctx)
}

func (a *App) Rename(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return usage("rename <app|folder> <id> <new name>")
	}
	ref, err := a.resolve(args[0], args[1])
	if err != nil {
		return err
	}
	if err := a.explorer.Rename(ctx, ref, strings.Join(args[2:], " ")); err != nil {
		return err
	}
	return a.List(ctx)
}

// Remove deletes one item after confirmation.
func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("rm <app|folder|file> <id>")
	}
	ref, err := a.resolve(args[0], args[1])
	if err != nil {
		return err
	}

	question := fmt.Sprintf("Delete %s?", ref.Key())
	if ref.Kind != tree.KindFile {
		question = fmt.Sprintf("Delete %s and everything in it?", ref.Key())
	}
	ok, err := Confirm(a.reader, question, a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.explorer.Delete(ctx, ref); err != nil {
		return err
	}
	return a.List(ctx)
}

// Move is the keyboard form of drag and drop.
func (a *App) Move(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return usage("mv <folder|file> <id> <app|folder> <id>")
	}
	src, err := a.resolve(args[0], args[1])
	if err != nil {
		return err
	}
	dst, err := a.resolve(args[2], args[3])
	if err != nil {
		return err
	}
	if err := a.explorer.Drop(ctx, src, dst); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Index(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("index <folder|file> <id>")
	}
	ref, err := a.resolve(args[0], args[1])
	if err != nil {
		return err
	}
	if err := a.explorer.Index(ctx, ref); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Status(ctx context.Context, args []string) error {
	if len(args) < 2 {
		names := make([]string, len(models.ApplicationStatuses))
		for i, s := range models.ApplicationStatuses {
			names[i] = string(s)
		}
		return usage("status <app-id> <" + strings.Join(names, "|") + "> [notes]")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	status := models.ApplicationStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, args[1])
	}
	if err := a.explorer.UpdateStatus(ctx, id, status, strings.Join(args[2:], " ")); err != nil {
		return err
	}
	a.printf("Application #%d is now %s\n", id, status)
	return nil
}

// Upload sends local files or directories to the current application, or
// creates a new application from a directory when none is selected.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("upload <path>...")
	}
	var appID *int64
	if cur := a.explorer.State().Cursor; !cur.IsZero() {
		id := cur.ApplicationID
		appID = &id
	}
	req, err := a.uploads.Prepare(args, appID)
	if err != nil {
		return err
	}
	if req.ApplicationID == nil && req.CompanyName == "" {
		return fmt.Errorf("upload: %w (open one, or upload a directory)", common.ErrNoApplicationSelected)
	}

	summary, err := a.explorer.Upload(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Uploaded %d file(s)", len(summary.Files))
	if summary.Message != "" {
		a.printf(": %s", summary.Message)
	}
	a.println()
	for _, e := range summary.Errors {
		a.println("  !", e)
	}
	return nil
}
