package tree

import (
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// NodeKind tags the variant an explorer item belongs to.
type NodeKind int

const (
	KindApplication NodeKind = iota + 1
	KindFolder
	KindFile
)

func (k NodeKind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// ParseKind is the inverse of NodeKind.String. "app" and "doc" are accepted
// as short forms.
func ParseKind(s string) (NodeKind, error) {
	switch s {
	case "application", "app":
		return KindApplication, nil
	case "folder":
		return KindFolder, nil
	case "file", "doc", "document":
		return KindFile, nil
	default:
		return 0, fmt.Errorf("unknown item kind %q", s)
	}
}

// Ref identifies an explorer item without holding its data.
type Ref struct {
	Kind          NodeKind
	ID            int64
	ApplicationID int64
}

// Key returns the selection key, e.g. "folder-10".
func (r Ref) Key() string {
	return fmt.Sprintf("%s-%d", r.Kind, r.ID)
}

// Node is an application or folder in the explorer tree.
// Exactly one of Application and Folder is set, matching Kind.
type Node struct {
	Kind        NodeKind
	Application *models.Application
	Folder      *models.Folder
	Children    []*Node
	Expanded    bool
}

// NewApplicationNode wraps app as a collapsed node without children.
func NewApplicationNode(app models.Application) *Node {
	return &Node{Kind: KindApplication, Application: &app}
}

// NewFolderNode wraps f as a collapsed node without children.
func NewFolderNode(f models.Folder) *Node {
	return &Node{Kind: KindFolder, Folder: &f, Children: []*Node{}}
}

func (n *Node) ID() int64 {
	switch n.Kind {
	case KindApplication:
		return n.Application.ID
	case KindFolder:
		return n.Folder.ID
	default:
		panic(fmt.Sprintf("tree: node of kind %s", n.Kind))
	}
}

func (n *Node) ApplicationID() int64 {
	switch n.Kind {
	case KindApplication:
		return n.Application.ID
	case KindFolder:
		return n.Folder.ApplicationID
	default:
		panic(fmt.Sprintf("tree: node of kind %s", n.Kind))
	}
}

func (n *Node) Name() string {
	switch n.Kind {
	case KindApplication:
		return n.Application.CompanyName
	case KindFolder:
		return n.Folder.Name
	default:
		panic(fmt.Sprintf("tree: node of kind %s", n.Kind))
	}
}

func (n *Node) Ref() Ref {
	return Ref{Kind: n.Kind, ID: n.ID(), ApplicationID: n.ApplicationID()}
}

// Clone returns a deep copy of n and its subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Application != nil {
		app := *n.Application
		c.Application = &app
	}
	if n.Folder != nil {
		f := *n.Folder
		c.Folder = &f
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}

// Walk visits every node depth-first, pre-order. Returning false from fn
// stops the walk.
func Walk(forest []*Node, fn func(n *Node, depth int) bool) {
	walk(forest, 0, fn)
}

func walk(forest []*Node, depth int, fn func(*Node, int) bool) bool {
	for _, n := range forest {
		if !fn(n, depth) {
			return false
		}
		if !walk(n.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given kind and id, or nil.
func Find(forest []*Node, kind NodeKind, id int64) *Node {
	var found *Node
	Walk(forest, func(n *Node, _ int) bool {
		if n.Kind == kind && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes of the given kind.
func Count(forest []*Node, kind NodeKind) int {
	total := 0
	Walk(forest, func(n *Node, _ int) bool {
		if n.Kind == kind {
			total++
		}
		return true
	})
	return total
}

// PathTo returns the chain of nodes from a top-level node down to the node
// with the given kind and id, inclusive. It returns nil if there is no such
// node.
func PathTo(forest []*Node, kind NodeKind, id int64) []*Node {
	for _, n := range forest {
		if n.Kind == kind && n.ID() == id {
			return []*Node{n}
		}
		if rest := PathTo(n.Children, kind, id); rest != nil {
			return append([]*Node{n}, rest...)
		}
	}
	return nil
}

// ContainsFolder reports whether folderID is n itself or one of its
// descendants.
func (n *Node) ContainsFolder(folderID int64) bool {
	if n.Kind == KindFolder && n.Folder.ID == folderID {
		return true
	}
	return Find(n.Children, KindFolder, folderID) != nil
}

// Toggle returns a forest in which the expansion flag of the matching node
// is flipped. Nodes on the path to it are copied; everything else is shared
// with the input. ok is false when no node matches and the input is
// returned unchanged.
func Toggle(forest []*Node, kind NodeKind, id int64) (out []*Node, ok bool) {
	for i, n := range forest {
		if n.Kind == kind && n.ID() == id {
			c := *n
			c.Expanded = !n.Expanded
			return replaceAt(forest, i, &c), true
		}
		if children, found := Toggle(n.Children, kind, id); found {
			c := *n
			c.Children = children
			return replaceAt(forest, i, &c), true
		}
	}
	return forest, false
}

func replaceAt(forest []*Node, i int, n *Node) []*Node {
	out := make([]*Node, len(forest))
	copy(out, forest)
	out[i] = n
	return out
}
