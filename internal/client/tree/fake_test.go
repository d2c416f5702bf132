package tree

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// fakeLister serves folders from memory, keyed by parent (0 = root).
type fakeLister struct {
	mu      sync.Mutex
	folders []models.Folder
	fail    map[int64]error // parent id -> error
	reverse bool
	calls   int
}

func (f *fakeLister) ListFolders(ctx context.Context, applicationID int64, parentID *int64) ([]models.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	var parent int64
	if parentID != nil {
		parent = *parentID
	}
	if err, ok := f.fail[parent]; ok {
		return nil, err
	}

	out := []models.Folder{}
	for _, fo := range f.folders {
		if fo.ApplicationID != applicationID {
			continue
		}
		var p int64
		if fo.ParentID != nil {
			p = *fo.ParentID
		}
		if p == parent {
			out = append(out, fo)
		}
	}
	if f.reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")

func folder(id, appID int64, name string, parent int64) models.Folder {
	f := models.Folder{ID: id, ApplicationID: appID, Name: name}
	if parent != 0 {
		f.ParentID = &parent
	}
	return f
}
