package tree

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// DefaultMaxDepth is used when NewBuilder is given a non-positive depth.
const DefaultMaxDepth = 32

// FolderLister fetches the immediate children of a folder (parentID nil
// means the application root).
type FolderLister interface {
	ListFolders(ctx context.Context, applicationID int64, parentID *int64) ([]models.Folder, error)
}

// Builder assembles the folder forest of one application.
type Builder struct {
	lister   FolderLister
	logger   logging.Logger
	maxDepth int
}

func NewBuilder(lister FolderLister, logger logging.Logger, maxDepth int) *Builder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Builder{lister: lister, logger: logger, maxDepth: maxDepth}
}

// Build fetches the folder hierarchy of applicationID depth-first, one
// request per folder. Nodes come back collapsed and in backend order.
//
// If the root level cannot be fetched Build returns an empty forest and the
// error. A failure below the root is logged and leaves that folder with no
// children. Cancellation of ctx aborts the build.
func (b *Builder) Build(ctx context.Context, applicationID int64) ([]*Node, error) {
	roots, err := b.lister.ListFolders(ctx, applicationID, nil)
	if err != nil {
		return []*Node{}, fmt.Errorf("list root folders of application %d: %w", applicationID, err)
	}

	forest := make([]*Node, 0, len(roots))
	for _, f := range roots {
		n := NewFolderNode(f)
		if err := b.fill(ctx, n, 1); err != nil {
			return []*Node{}, err
		}
		forest = append(forest, n)
	}
	return forest, nil
}

// fill loads the subtree under n. It only returns an error when ctx is done.
func (b *Builder) fill(ctx context.Context, n *Node, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth >= b.maxDepth {
		b.logger.Warn(ctx, "folder tree too deep, not descending",
			"application_id", n.Folder.ApplicationID,
			"folder_id", n.Folder.ID,
			"depth", depth,
		)
		return nil
	}

	parentID := n.Folder.ID
	children, err := b.lister.ListFolders(ctx, n.Folder.ApplicationID, &parentID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		b.logger.Warn(ctx, "failed to load subfolders",
			"application_id", n.Folder.ApplicationID,
			"folder_id", n.Folder.ID,
			"error", err,
		)
		return nil
	}

	for _, f := range children {
		child := NewFolderNode(f)
		if err := b.fill(ctx, child, depth+1); err != nil {
			return err
		}
		n.Children = append(n.Children, child)
	}
	return nil
}
