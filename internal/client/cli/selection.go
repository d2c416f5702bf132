package cli

import (
	"context"
	"fmt"
)

func (a *App) Multi(ctx context.Context) error {
	if a.explorer.ToggleMultiSelect() {
		a.println("Multi-select on. Use 'pick <kind> <id>' to select items.")
	} else {
		a.println("Multi-select off.")
	}
	return nil
}

func (a *App) Pick(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("pick <app|folder|file> <id>")
	}
	ref, err := a.resolve(args[0], args[1])
	if err != nil {
		return err
	}
	if err := a.explorer.ToggleSelected(ref); err != nil {
		return err
	}
	return a.Selection(ctx)
}

func (a *App) Selection(ctx context.Context) error {
	sel := a.explorer.State().Selection
	if sel.Len() == 0 {
		a.println("Nothing selected.")
		return nil
	}
	a.printf("%d selected: %v\n", sel.Len(), sel.Keys())
	return nil
}

func (a *App) BulkDelete(ctx context.Context) error {
	n := a.explorer.State().Selection.Len()
	if n == 0 {
		a.println("Nothing selected.")
		return nil
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %d item(s)?", n), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.explorer.DeleteSelected(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) BulkIndex(ctx context.Context) error {
	if a.explorer.State().Selection.Len() == 0 {
		a.println("Nothing selected.")
		return nil
	}
	if err := a.explorer.IndexSelected(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}
