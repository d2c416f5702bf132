package cli

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

func usage(u string) error {
	return fmt.Errorf("%w: usage: %s", common.ErrorValidation, u)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", common.ErrorValidation, s)
	}
	return id, nil
}

// resolve turns "<kind> <id>" into a ref using what the explorer has
// loaded. Folders must be in the tree or the current listing, files in the
// current listing.
func (a *App) resolve(kindArg, idArg string) (tree.Ref, error) {
	kind, err := tree.ParseKind(kindArg)
	if err != nil {
		return tree.Ref{}, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	id, err := parseID(idArg)
	if err != nil {
		return tree.Ref{}, err
	}
	ref, ok := a.explorer.State().Resolve(kind, id)
	if !ok {
		return tree.Ref{}, fmt.Errorf("%s %d is not listed: %w", kind, id, common.ErrorNotFound)
	}
	return ref, nil
}
