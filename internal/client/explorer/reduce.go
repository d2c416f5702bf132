package explorer

import (
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
)

// Action is an input to Reduce.
type Action interface {
	isAction()
}

// ApplicationsLoaded replaces the application list. Application nodes keep
// their expansion flag; only the cursor's application keeps its forest. An
// application that vanished from the list is deselected.
type ApplicationsLoaded struct {
	Applications []models.Application
}

// NodeSelected moves the cursor to an application root or a folder.
// Name is the folder's display name, used when the folder is not in the
// tree.
type NodeSelected struct {
	Ref  tree.Ref
	Name string
}

// TreeRequested marks the start of a tree build.
type TreeRequested struct{}

// TreeLoaded attaches a built forest to an application node. Failed is
// set when the root level could not be fetched and Forest is empty.
type TreeLoaded struct {
	Gen           uint64
	ApplicationID int64
	Forest        []*tree.Node
	Failed        bool
}

// ContentRequested marks the start of a content load for the cursor.
type ContentRequested struct{}

// ContentLoaded sets the cursor's folders and files.
type ContentLoaded struct {
	Gen     uint64
	Folders []models.Folder
	Files   []models.Document
}

// ExpansionToggled flips the expansion flag of one tree node.
type ExpansionToggled struct {
	Kind tree.NodeKind
	ID   int64
}

type ErrorRaised struct {
	Message string
}

type ErrorCleared struct{}

// MultiSelectToggled switches multi-select mode. Leaving the mode clears
// the selection.
type MultiSelectToggled struct{}

// SelectionToggled adds or removes one item. Ignored outside multi-select
// mode.
type SelectionToggled struct {
	Ref tree.Ref
}

type SelectionCleared struct{}

func (ApplicationsLoaded) isAction() {}
func (NodeSelected) isAction()       {}
func (TreeRequested) isAction()      {}
func (TreeLoaded) isAction()         {}
func (ContentRequested) isAction()   {}
func (ContentLoaded) isAction()      {}
func (ExpansionToggled) isAction()   {}
func (ErrorRaised) isAction()        {}
func (ErrorCleared) isAction()       {}
func (MultiSelectToggled) isAction() {}
func (SelectionToggled) isAction()   {}
func (SelectionCleared) isAction()   {}

// Reduce returns the state that results from applying a to s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ApplicationsLoaded:
		return applicationsLoaded(s, a)

	case NodeSelected:
		return nodeSelected(s, a)

	case TreeRequested:
		s.TreeGen++
		return s

	case TreeLoaded:
		if a.Gen != s.TreeGen {
			return s
		}
		return treeLoaded(s, a)

	case ContentRequested:
		s.ContentGen++
		return s

	case ContentLoaded:
		if a.Gen != s.ContentGen {
			return s
		}
		s.Folders = a.Folders
		s.Files = a.Files
		return s

	case ExpansionToggled:
		if forest, ok := tree.Toggle(s.Tree, a.Kind, a.ID); ok {
			s.Tree = forest
		}
		return s

	case ErrorRaised:
		s.Error = a.Message
		return s

	case ErrorCleared:
		s.Error = ""
		return s

	case MultiSelectToggled:
		s.MultiSelect = !s.MultiSelect
		if !s.MultiSelect {
			s.Selection = Selection{}
		}
		return s

	case SelectionToggled:
		if !s.MultiSelect {
			return s
		}
		s.Selection = s.Selection.toggled(a.Ref)
		return s

	case SelectionCleared:
		s.Selection = Selection{}
		return s

	default:
		return s
	}
}

func applicationsLoaded(s State, a ApplicationsLoaded) State {
	prev := make(map[int64]*tree.Node, len(s.Tree))
	for _, n := range s.Tree {
		if n.Kind == tree.KindApplication {
			prev[n.ID()] = n
		}
	}

	nodes := make([]*tree.Node, 0, len(a.Applications))
	for _, app := range a.Applications {
		n := tree.NewApplicationNode(app)
		if old, ok := prev[app.ID]; ok {
			n.Expanded = old.Expanded
			if app.ID == s.Cursor.ApplicationID {
				n.Children = old.Children
			}
		}
		nodes = append(nodes, n)
	}
	s.Applications = a.Applications
	s.Tree = nodes

	if !s.Cursor.IsZero() {
		if _, ok := s.Application(s.Cursor.ApplicationID); !ok {
			s.Selected = nil
			s.Cursor = Cursor{}
			s.Folders = nil
			s.Files = nil
		}
	}
	s.Breadcrumbs = s.breadcrumbs()
	return s
}

func nodeSelected(s State, a NodeSelected) State {
	ref := a.Ref
	switch ref.Kind {
	case tree.KindApplication:
		s.Cursor = Cursor{ApplicationID: ref.ID}
	case tree.KindFolder:
		id := ref.ID
		s.Cursor = Cursor{ApplicationID: ref.ApplicationID, FolderID: &id, FolderName: a.Name}
	case tree.KindFile:
		return s
	default:
		return s
	}
	s.Selected = &ref
	s.Breadcrumbs = s.breadcrumbs()
	return s
}

func treeLoaded(s State, a TreeLoaded) State {
	nodes := make([]*tree.Node, len(s.Tree))
	copy(nodes, s.Tree)
	for i, n := range nodes {
		if n.Kind != tree.KindApplication {
			continue
		}
		switch {
		case n.ID() == a.ApplicationID:
			c := *n
			c.Children = a.Forest
			nodes[i] = &c
		case n.Children != nil:
			// Forests of other applications are fetched again on selection.
			c := *n
			c.Children = nil
			nodes[i] = &c
		}
	}
	s.Tree = nodes

	// The cursor folder may have been deleted or moved away.
	if !a.Failed && s.Cursor.ApplicationID == a.ApplicationID && s.Cursor.FolderID != nil &&
		tree.Find(a.Forest, tree.KindFolder, *s.Cursor.FolderID) == nil {
		ref := tree.Ref{Kind: tree.KindApplication, ID: a.ApplicationID, ApplicationID: a.ApplicationID}
		s.Cursor = Cursor{ApplicationID: a.ApplicationID}
		s.Selected = &ref
	}
	s.Breadcrumbs = s.breadcrumbs()
	return s
}
