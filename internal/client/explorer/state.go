package explorer

import (
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
)

// Cursor is the location whose contents are listed. ApplicationID 0 means
// nothing is selected; FolderID nil means the application root.
type Cursor struct {
	ApplicationID int64
	FolderID      *int64
	// FolderName is kept for the breadcrumb fallback when the folder is
	// not part of the built tree.
	FolderName string
}

func (c Cursor) IsZero() bool { return c.ApplicationID == 0 }

// Crumb is one element of the breadcrumb path.
type Crumb struct {
	Ref  tree.Ref
	Name string
}

// FormatCrumbs renders crumbs as "Acme / Resumes / 2024".
func FormatCrumbs(crumbs []Crumb) string {
	names := make([]string, len(crumbs))
	for i, c := range crumbs {
		names[i] = c.Name
	}
	return strings.Join(names, " / ")
}

// Selection is an insertion-ordered set of refs keyed by Ref.Key.
// The zero value is empty. Selections are immutable; toggled returns a copy.
type Selection struct {
	order []string
	refs  map[string]tree.Ref
}

func (s Selection) Len() int { return len(s.order) }

func (s Selection) Has(r tree.Ref) bool {
	_, ok := s.refs[r.Key()]
	return ok
}

// Keys returns the selection keys in the order they were added.
func (s Selection) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Refs returns the selected refs in the order they were added.
func (s Selection) Refs() []tree.Ref {
	out := make([]tree.Ref, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.refs[k])
	}
	return out
}

func (s Selection) toggled(r tree.Ref) Selection {
	key := r.Key()
	next := Selection{refs: make(map[string]tree.Ref, len(s.refs)+1)}
	if _, ok := s.refs[key]; ok {
		for _, k := range s.order {
			if k != key {
				next.order = append(next.order, k)
				next.refs[k] = s.refs[k]
			}
		}
		return next
	}
	next.order = append(append(next.order, s.order...), key)
	for k, v := range s.refs {
		next.refs[k] = v
	}
	next.refs[key] = r
	return next
}

// State is a snapshot of the explorer. Values are treated as immutable:
// Reduce never modifies a State it was given.
type State struct {
	Applications []models.Application
	// Tree holds one node per application. Only the application under the
	// cursor has its folder forest attached.
	Tree []*tree.Node

	Selected    *tree.Ref
	Cursor      Cursor
	Breadcrumbs []Crumb

	// Contents of the cursor.
	Folders []models.Folder
	Files   []models.Document

	// Generations of the latest tree and content requests. Results that
	// carry an older generation are dropped.
	TreeGen    uint64
	ContentGen uint64

	MultiSelect bool
	Selection   Selection

	// Error is the last user-visible failure; empty when the last
	// operation succeeded.
	Error string
}

// Application returns the application with the given id from the list.
func (s State) Application(id int64) (models.Application, bool) {
	for _, a := range s.Applications {
		if a.ID == id {
			return a, true
		}
	}
	return models.Application{}, false
}

// Resolve finds a listed item and returns its ref. Applications are looked
// up in the application list, folders in the tree and the cursor contents,
// files in the cursor contents.
func (s State) Resolve(kind tree.NodeKind, id int64) (tree.Ref, bool) {
	switch kind {
	case tree.KindApplication:
		if _, ok := s.Application(id); ok {
			return tree.Ref{Kind: kind, ID: id, ApplicationID: id}, true
		}
	case tree.KindFolder:
		if n := tree.Find(s.Tree, kind, id); n != nil {
			return n.Ref(), true
		}
		for _, f := range s.Folders {
			if f.ID == id {
				return tree.Ref{Kind: kind, ID: id, ApplicationID: f.ApplicationID}, true
			}
		}
	case tree.KindFile:
		for _, d := range s.Files {
			if d.ID == id {
				return tree.Ref{Kind: kind, ID: id, ApplicationID: d.ApplicationID}, true
			}
		}
	}
	return tree.Ref{}, false
}

// name returns the display name of a resolvable item.
func (s State) name(r tree.Ref) string {
	switch r.Kind {
	case tree.KindApplication:
		if a, ok := s.Application(r.ID); ok {
			return a.CompanyName
		}
	case tree.KindFolder:
		if n := tree.Find(s.Tree, r.Kind, r.ID); n != nil {
			return n.Name()
		}
		for _, f := range s.Folders {
			if f.ID == r.ID {
				return f.Name
			}
		}
	case tree.KindFile:
		for _, d := range s.Files {
			if d.ID == r.ID {
				return d.Filename
			}
		}
	}
	return ""
}

// breadcrumbs derives the path for the cursor: the application followed by
// every folder from the root down to the cursor folder.
func (s State) breadcrumbs() []Crumb {
	if s.Cursor.IsZero() {
		return nil
	}
	appID := s.Cursor.ApplicationID
	app := Crumb{
		Ref:  tree.Ref{Kind: tree.KindApplication, ID: appID, ApplicationID: appID},
		Name: s.name(tree.Ref{Kind: tree.KindApplication, ID: appID}),
	}
	if s.Cursor.FolderID == nil {
		return []Crumb{app}
	}

	folderID := *s.Cursor.FolderID
	var appNode *tree.Node
	for _, n := range s.Tree {
		if n.Kind == tree.KindApplication && n.ID() == appID {
			appNode = n
			break
		}
	}
	if appNode != nil {
		if path := tree.PathTo(appNode.Children, tree.KindFolder, folderID); path != nil {
			crumbs := make([]Crumb, 0, len(path)+1)
			crumbs = append(crumbs, app)
			for _, n := range path {
				crumbs = append(crumbs, Crumb{Ref: n.Ref(), Name: n.Name()})
			}
			return crumbs
		}
	}

	return []Crumb{app, {
		Ref:  tree.Ref{Kind: tree.KindFolder, ID: folderID, ApplicationID: appID},
		Name: s.Cursor.FolderName,
	}}
}
