package explorer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// fakeStore is an in-memory backend. Methods not overridden panic through
// the nil embedded interface.
type fakeStore struct {
	client.Client

	mu      sync.Mutex
	apps    []models.Application
	folders []models.Folder
	docs    []models.Document
	nextID  int64

	// fail maps "op:id" to the error that call returns.
	fail  map[string]error
	calls []string
}

var errBackend = errors.New("backend exploded")

func newAcmeStore() *fakeStore {
	ten := int64(10)
	return &fakeStore{
		apps: []models.Application{
			{ID: 1, CompanyName: "Acme", Status: models.StatusApplied},
			{ID: 2, CompanyName: "Globex", Status: models.StatusInterview},
		},
		folders: []models.Folder{
			{ID: 10, ApplicationID: 1, Name: "Resumes"},
			{ID: 11, ApplicationID: 1, Name: "2024", ParentID: &ten},
			{ID: 20, ApplicationID: 2, Name: "Offers"},
		},
		docs: []models.Document{
			{ID: 100, ApplicationID: 1, FolderID: &ten, Filename: "cv.pdf"},
			{ID: 101, ApplicationID: 1, Filename: "notes.txt"},
			{ID: 200, ApplicationID: 2, Filename: "offer.pdf"},
		},
		nextID: 1000,
		fail:   map[string]error{},
	}
}

func (f *fakeStore) record(op string, id int64) error {
	key := fmt.Sprintf("%s:%d", op, id)
	f.calls = append(f.calls, key)
	return f.fail[key]
}

func (f *fakeStore) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, op+":") {
			n++
		}
	}
	return n
}

func (f *fakeStore) resetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *fakeStore) ListApplications(ctx context.Context) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListApplications", 0); err != nil {
		return nil, err
	}
	out := make([]models.Application, len(f.apps))
	copy(out, f.apps)
	return out, nil
}

func (f *fakeStore) ListFolders(ctx context.Context, applicationID int64, parentID *int64) ([]models.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var p int64
	if parentID != nil {
		p = *parentID
	}
	if err := f.record("ListFolders", p); err != nil {
		return nil, err
	}
	out := []models.Folder{}
	for _, fo := range f.folders {
		if fo.ApplicationID != applicationID {
			continue
		}
		if (fo.ParentID == nil && parentID == nil) || (fo.ParentID != nil && parentID != nil && *fo.ParentID == *parentID) {
			out = append(out, fo)
		}
	}
	return out, nil
}

func (f *fakeStore) ListFiles(ctx context.Context, applicationID *int64) ([]models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListFiles", *applicationID); err != nil {
		return nil, err
	}
	out := []models.Document{}
	for _, d := range f.docs {
		if d.ApplicationID == *applicationID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateFolder(ctx context.Context, applicationID int64, name string, parentID *int64) (*models.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateFolder", applicationID); err != nil {
		return nil, err
	}
	f.nextID++
	fo := models.Folder{ID: f.nextID, ApplicationID: applicationID, Name: name, ParentID: parentID}
	f.folders = append(f.folders, fo)
	return &fo, nil
}

func (f *fakeStore) RenameFolder(ctx context.Context, id int64, newName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("RenameFolder", id); err != nil {
		return err
	}
	for i := range f.folders {
		if f.folders[i].ID == id {
			f.folders[i].Name = newName
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) RenameApplication(ctx context.Context, id int64, newName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("RenameApplication", id); err != nil {
		return err
	}
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].CompanyName = newName
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateApplicationStatus", id); err != nil {
		return err
	}
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = status
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) MoveFolder(ctx context.Context, id int64, targetParentID *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("MoveFolder", id); err != nil {
		return err
	}
	for i := range f.folders {
		if f.folders[i].ID == id {
			f.folders[i].ParentID = targetParentID
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) MoveDocument(ctx context.Context, applicationID, id int64, targetFolderID *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("MoveDocument", id); err != nil {
		return err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs[i].FolderID = targetFolderID
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) DeleteApplication(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteApplication", id); err != nil {
		return err
	}
	apps := f.apps[:0:0]
	for _, a := range f.apps {
		if a.ID != id {
			apps = append(apps, a)
		}
	}
	f.apps = apps
	return nil
}

func (f *fakeStore) DeleteFolder(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteFolder", id); err != nil {
		return err
	}
	folders := f.folders[:0:0]
	for _, fo := range f.folders {
		if fo.ID != id && (fo.ParentID == nil || *fo.ParentID != id) {
			folders = append(folders, fo)
		}
	}
	f.folders = folders
	return nil
}

func (f *fakeStore) DeleteDocument(ctx context.Context, applicationID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteDocument", id); err != nil {
		return err
	}
	docs := f.docs[:0:0]
	for _, d := range f.docs {
		if d.ID != id {
			docs = append(docs, d)
		}
	}
	f.docs = docs
	return nil
}

func (f *fakeStore) IndexDocument(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("IndexDocument", id); err != nil {
		return err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs[i].Indexed = true
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) IndexFolder(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("IndexFolder", id); err != nil {
		return err
	}
	for i := range f.docs {
		if f.docs[i].FolderID != nil && *f.docs[i].FolderID == id {
			f.docs[i].Indexed = true
		}
	}
	return nil
}

func (f *fakeStore) UploadFiles(ctx context.Context, req models.UploadRequest) (*models.UploadSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var appID int64
	if req.ApplicationID != nil {
		appID = *req.ApplicationID
	} else {
		f.nextID++
		appID = f.nextID
		f.apps = append(f.apps, models.Application{ID: appID, CompanyName: req.CompanyName, Status: models.StatusUploaded})
	}
	if err := f.record("UploadFiles", appID); err != nil {
		return nil, err
	}
	summary := &models.UploadSummary{Message: "ok", ApplicationID: &appID}
	for _, file := range req.Files {
		f.nextID++
		d := models.Document{ID: f.nextID, ApplicationID: appID, Filename: file.Name}
		f.docs = append(f.docs, d)
		summary.Files = append(summary.Files, d)
	}
	return summary, nil
}
