package explorer

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// Manager owns the explorer State. Remote calls run without holding the
// state lock; their results are applied through Reduce.
type Manager struct {
	client  client.Client
	builder *tree.Builder
	logger  logging.Logger

	mu    sync.Mutex
	state State
}

func NewManager(c client.Client, builder *tree.Builder, logger logging.Logger) *Manager {
	return &Manager{client: c, builder: builder, logger: logger}
}

// State returns the current snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) dispatch(a Action) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Reduce(m.state, a)
	return m.state
}

// fail records err as the visible error and returns it.
func (m *Manager) fail(err error) error {
	m.dispatch(ErrorRaised{Message: err.Error()})
	return err
}

// LoadApplications fetches the application list.
func (m *Manager) LoadApplications(ctx context.Context) error {
	apps, err := m.client.ListApplications(ctx)
	if err != nil {
		return m.fail(fmt.Errorf("load applications: %w", err))
	}
	m.dispatch(ApplicationsLoaded{Applications: apps})
	return nil
}

// SelectNode moves the cursor to an application or folder and loads its
// contents. Selecting an application other than the current one builds
// its folder tree first.
func (m *Manager) SelectNode(ctx context.Context, ref tree.Ref) error {
	switch ref.Kind {
	case tree.KindApplication, tree.KindFolder:
	case tree.KindFile:
		return m.fail(fmt.Errorf("select %s: %w", ref.Key(), common.ErrUnsupported))
	default:
		return m.fail(fmt.Errorf("select %s: %w", ref.Key(), common.ErrUnsupported))
	}

	prev := m.State()
	s := m.dispatch(NodeSelected{Ref: ref, Name: prev.name(ref)})

	if prev.Cursor.ApplicationID != s.Cursor.ApplicationID || !m.treeLoaded(s, s.Cursor.ApplicationID) {
		if err := m.reloadTree(ctx, s.Cursor.ApplicationID); err != nil {
			return err
		}
	}
	return m.loadContent(ctx)
}

func (m *Manager) treeLoaded(s State, applicationID int64) bool {
	for _, n := range s.Tree {
		if n.Kind == tree.KindApplication && n.ID() == applicationID {
			return n.Children != nil
		}
	}
	return false
}

// NavigateBreadcrumb selects the i-th breadcrumb.
func (m *Manager) NavigateBreadcrumb(ctx context.Context, i int) error {
	crumbs := m.State().Breadcrumbs
	if i < 0 || i >= len(crumbs) {
		return m.fail(fmt.Errorf("breadcrumb %d: %w", i, common.ErrorNotFound))
	}
	return m.SelectNode(ctx, crumbs[i].Ref)
}

// ToggleExpansion flips a node's expansion flag. No request is made.
func (m *Manager) ToggleExpansion(kind tree.NodeKind, id int64) error {
	if tree.Find(m.State().Tree, kind, id) == nil {
		return m.fail(fmt.Errorf("toggle %s-%d: %w", kind, id, common.ErrorNotFound))
	}
	m.dispatch(ExpansionToggled{Kind: kind, ID: id})
	return nil
}

// Refresh re-fetches the application list, the tree of the current
// application and the cursor contents.
func (m *Manager) Refresh(ctx context.Context) error {
	return m.rebuild(ctx)
}

func (m *Manager) reloadTree(ctx context.Context, applicationID int64) error {
	gen := m.dispatch(TreeRequested{}).TreeGen

	forest, err := m.builder.Build(ctx, applicationID)
	s := m.dispatch(TreeLoaded{Gen: gen, ApplicationID: applicationID, Forest: forest, Failed: err != nil})
	if s.TreeGen != gen {
		m.logger.Debug(ctx, "discarding stale tree", "application_id", applicationID, "gen", gen)
		return common.ErrSuperseded
	}
	if err != nil {
		return m.fail(fmt.Errorf("build folder tree: %w", err))
	}
	return nil
}

func (m *Manager) loadContent(ctx context.Context) error {
	s := m.dispatch(ContentRequested{})
	gen, cur := s.ContentGen, s.Cursor
	if cur.IsZero() {
		m.dispatch(ContentLoaded{Gen: gen})
		return nil
	}

	folders, files, err := m.fetchContent(ctx, cur)
	if err != nil {
		if m.State().ContentGen != gen {
			return common.ErrSuperseded
		}
		return m.fail(err)
	}

	if s = m.dispatch(ContentLoaded{Gen: gen, Folders: folders, Files: files}); s.ContentGen != gen {
		m.logger.Debug(ctx, "discarding stale content", "application_id", cur.ApplicationID, "gen", gen)
		return common.ErrSuperseded
	}
	return nil
}

func (m *Manager) fetchContent(ctx context.Context, cur Cursor) ([]models.Folder, []models.Document, error) {
	folders, err := m.client.ListFolders(ctx, cur.ApplicationID, cur.FolderID)
	if err != nil {
		return nil, nil, fmt.Errorf("list folders: %w", err)
	}
	appID := cur.ApplicationID
	all, err := m.client.ListFiles(ctx, &appID)
	if err != nil {
		return nil, nil, fmt.Errorf("list files: %w", err)
	}
	files := make([]models.Document, 0, len(all))
	for _, d := range all {
		if d.InFolder(cur.FolderID) {
			files = append(files, d)
		}
	}
	return folders, files, nil
}

// rebuild re-fetches everything the view shows: applications, the tree
// of the current application, then the cursor contents.
func (m *Manager) rebuild(ctx context.Context) error {
	if err := m.LoadApplications(ctx); err != nil {
		return err
	}
	s := m.State()
	if s.Cursor.IsZero() {
		m.dispatch(ContentLoaded{Gen: m.dispatch(ContentRequested{}).ContentGen})
		return nil
	}
	if err := m.reloadTree(ctx, s.Cursor.ApplicationID); err != nil {
		return err
	}
	return m.loadContent(ctx)
}

// mutate runs call and, when it succeeds, clears the error and rebuilds.
// On failure only the error message changes.
func (m *Manager) mutate(ctx context.Context, what string, call func(ctx context.Context) error) error {
	if err := call(ctx); err != nil {
		return m.fail(fmt.Errorf("%s: %w", what, err))
	}
	m.logger.Info(ctx, what)
	m.dispatch(ErrorCleared{})
	return m.rebuild(ctx)
}

// CreateFolder creates name under the cursor folder (or the application
// root).
func (m *Manager) CreateFolder(ctx context.Context, name string) (*models.Folder, error) {
	cur := m.State().Cursor
	if cur.IsZero() {
		return nil, m.fail(fmt.Errorf("create folder: %w", common.ErrNoApplicationSelected))
	}
	var created *models.Folder
	err := m.mutate(ctx, "create folder "+name, func(ctx context.Context) error {
		f, err := m.client.CreateFolder(ctx, cur.ApplicationID, name, cur.FolderID)
		created = f
		return err
	})
	return created, err
}

// Rename renames an application or folder.
func (m *Manager) Rename(ctx context.Context, ref tree.Ref, newName string) error {
	what := fmt.Sprintf("rename %s", ref.Key())
	switch ref.Kind {
	case tree.KindApplication:
		return m.mutate(ctx, what, func(ctx context.Context) error {
			return m.client.RenameApplication(ctx, ref.ID, newName)
		})
	case tree.KindFolder:
		return m.mutate(ctx, what, func(ctx context.Context) error {
			return m.client.RenameFolder(ctx, ref.ID, newName)
		})
	case tree.KindFile:
		return m.fail(fmt.Errorf("%s: %w", what, common.ErrUnsupported))
	default:
		return m.fail(fmt.Errorf("%s: %w", what, common.ErrUnsupported))
	}
}

// UpdateStatus changes an application's lifecycle status.
func (m *Manager) UpdateStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus, notes string) error {
	return m.mutate(ctx, fmt.Sprintf("set status of application-%d to %s", applicationID, status), func(ctx context.Context) error {
		return m.client.UpdateApplicationStatus(ctx, applicationID, status, notes)
	})
}

// Delete removes an application, folder or file. Backend deletes cascade.
func (m *Manager) Delete(ctx context.Context, ref tree.Ref) error {
	return m.mutate(ctx, "delete "+ref.Key(), func(ctx context.Context) error {
		return m.deleteRemote(ctx, ref)
	})
}

// Index asks the backend to index a file, or every file under a folder.
func (m *Manager) Index(ctx context.Context, ref tree.Ref) error {
	return m.mutate(ctx, "index "+ref.Key(), func(ctx context.Context) error {
		return m.indexRemote(ctx, ref)
	})
}

// Upload sends files and rebuilds. When the request names no application
// the current one is used; with no current one the backend creates a new
// application from CompanyName.
func (m *Manager) Upload(ctx context.Context, req models.UploadRequest) (*models.UploadSummary, error) {
	if req.ApplicationID == nil && req.CompanyName == "" {
		cur := m.State().Cursor
		if cur.IsZero() {
			return nil, m.fail(fmt.Errorf("upload: %w", common.ErrNoApplicationSelected))
		}
		id := cur.ApplicationID
		req.ApplicationID = &id
	}
	var summary *models.UploadSummary
	err := m.mutate(ctx, fmt.Sprintf("upload %d file(s)", len(req.Files)), func(ctx context.Context) error {
		s, err := m.client.UploadFiles(ctx, req)
		summary = s
		return err
	})
	return summary, err
}

func (m *Manager) deleteRemote(ctx context.Context, ref tree.Ref) error {
	switch ref.Kind {
	case tree.KindApplication:
		return m.client.DeleteApplication(ctx, ref.ID)
	case tree.KindFolder:
		return m.client.DeleteFolder(ctx, ref.ID)
	case tree.KindFile:
		return m.client.DeleteDocument(ctx, ref.ApplicationID, ref.ID)
	default:
		return fmt.Errorf("delete %s: %w", ref.Key(), common.ErrUnsupported)
	}
}

func (m *Manager) indexRemote(ctx context.Context, ref tree.Ref) error {
	switch ref.Kind {
	case tree.KindFolder:
		return m.client.IndexFolder(ctx, ref.ID)
	case tree.KindFile:
		return m.client.IndexDocument(ctx, ref.ID)
	case tree.KindApplication:
		return common.ErrUnsupported
	default:
		return common.ErrUnsupported
	}
}
