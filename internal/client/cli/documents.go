package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// View prints a listed document's text.
func (a *App) View(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("view <file-id>")
	}
	ref, err := a.resolve("file", args[0])
	if err != nil {
		return err
	}
	name := ""
	for _, d := range a.explorer.State().Files {
		if d.ID == ref.ID {
			name = d.Filename
		}
	}

	view, err := a.viewer.Open(ctx, ref.ApplicationID, ref.ID)
	if errors.Is(err, common.ErrSuperseded) {
		return nil
	}
	if err != nil {
		return err
	}
	a.printf("--- %s ---\n%s\n", name, view.Content)
	return nil
}

// Detail prints an application's documents and status history.
func (a *App) Detail(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("detail <app-id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	d, err := a.client.GetApplication(ctx, id)
	if err != nil {
		return err
	}
	a.println(renderDetail(d))
	return nil
}
