package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// ToggleMultiSelect switches multi-select mode and reports the new mode.
func (m *Manager) ToggleMultiSelect() bool {
	return m.dispatch(MultiSelectToggled{}).MultiSelect
}

// ToggleSelected adds ref to the selection or removes it.
func (m *Manager) ToggleSelected(ref tree.Ref) error {
	if !m.State().MultiSelect {
		return m.fail(fmt.Errorf("select %s: multi-select is off: %w", ref.Key(), common.ErrUnsupported))
	}
	m.dispatch(SelectionToggled{Ref: ref})
	return nil
}

// ClearSelection empties the selection.
func (m *Manager) ClearSelection() {
	m.dispatch(SelectionCleared{})
}

// DeleteSelected deletes every selected item. See runBulk.
func (m *Manager) DeleteSelected(ctx context.Context) error {
	return m.runBulk(ctx, "delete", m.deleteRemote)
}

// IndexSelected indexes every selected item. See runBulk.
func (m *Manager) IndexSelected(ctx context.Context) error {
	return m.runBulk(ctx, "index", m.indexRemote)
}

// runBulk applies op to the selected items one at a time in selection
// order. A failed item does not stop the batch and nothing is rolled back;
// cancelling ctx skips the remaining items and the rebuild.
// The selection is cleared in every case, and the view is rebuilt once if
// at least one item succeeded. Per-item failures are joined.
func (m *Manager) runBulk(ctx context.Context, name string, op func(context.Context, tree.Ref) error) error {
	refs := m.State().Selection.Refs()
	m.dispatch(SelectionCleared{})
	if len(refs) == 0 {
		return nil
	}

	var errs []error
	done := 0
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			break
		}
		if err := op(ctx, ref); err != nil {
			m.logger.Warn(ctx, "bulk item failed", "op", name, "item", ref.Key(), "error", err)
			errs = append(errs, fmt.Errorf("%s %s: %w", name, ref.Key(), err))
			continue
		}
		done++
	}
	m.logger.Info(ctx, "bulk operation finished", "op", name, "succeeded", done, "failed", len(errs))

	var rebuildErr error
	if done > 0 && ctx.Err() == nil {
		m.dispatch(ErrorCleared{})
		rebuildErr = m.rebuild(ctx)
	}
	if len(errs) > 0 {
		return m.fail(errors.Join(append(errs, rebuildErr)...))
	}
	return rebuildErr
}
