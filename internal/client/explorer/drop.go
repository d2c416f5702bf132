package explorer

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// CheckDrop decides whether src may be dropped on dst and returns the new
// parent folder id (nil for the application root). It makes no requests.
//
// Only folders and files can be dragged; only applications and folders
// accept drops. Items never change application. A folder cannot be dropped
// on itself or on one of its descendants.
func CheckDrop(s State, src, dst tree.Ref) (*int64, error) {
	switch src.Kind {
	case tree.KindFolder, tree.KindFile:
	case tree.KindApplication:
		return nil, fmt.Errorf("drag %s: %w", src.Key(), common.ErrUnsupported)
	default:
		return nil, fmt.Errorf("drag %s: %w", src.Key(), common.ErrUnsupported)
	}

	var target *int64
	switch dst.Kind {
	case tree.KindApplication:
	case tree.KindFolder:
		id := dst.ID
		target = &id
	case tree.KindFile:
		return nil, fmt.Errorf("drop on %s: %w", dst.Key(), common.ErrInvalidDropTarget)
	default:
		return nil, fmt.Errorf("drop on %s: %w", dst.Key(), common.ErrInvalidDropTarget)
	}

	if src.ApplicationID != dst.ApplicationID {
		return nil, fmt.Errorf("move %s to %s: %w", src.Key(), dst.Key(), common.ErrCrossApplicationMove)
	}

	if src.Kind == tree.KindFolder && target != nil {
		if *target == src.ID {
			return nil, fmt.Errorf("move %s into itself: %w", src.Key(), common.ErrInvalidDropTarget)
		}
		if n := tree.Find(s.Tree, tree.KindFolder, src.ID); n != nil && n.ContainsFolder(*target) {
			return nil, fmt.Errorf("move %s into its descendant %s: %w", src.Key(), dst.Key(), common.ErrInvalidDropTarget)
		}
	}
	return target, nil
}

// Drop moves src under dst with a single request and rebuilds. Drops
// rejected by CheckDrop only set the error.
func (m *Manager) Drop(ctx context.Context, src, dst tree.Ref) error {
	target, err := CheckDrop(m.State(), src, dst)
	if err != nil {
		return m.fail(err)
	}

	what := fmt.Sprintf("move %s to %s", src.Key(), dst.Key())
	switch src.Kind {
	case tree.KindFolder:
		return m.mutate(ctx, what, func(ctx context.Context) error {
			return m.client.MoveFolder(ctx, src.ID, target)
		})
	case tree.KindFile:
		return m.mutate(ctx, what, func(ctx context.Context) error {
			return m.client.MoveDocument(ctx, src.ApplicationID, src.ID, target)
		})
	default:
		return m.fail(fmt.Errorf("%s: %w", what, common.ErrUnsupported))
	}
}
