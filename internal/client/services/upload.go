package services

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

type UploadService interface {
	// Prepare turns local paths into an upload request. Files are sent
	// under their base name. A directory is sent recursively with each
	// file named by its path relative to the directory's parent, so the
	// backend can recreate the folders. When applicationID is nil and a
	// directory is given, the first directory's name becomes the company
	// name of a new application.
	Prepare(paths []string, applicationID *int64) (models.UploadRequest, error)
}

type uploadService struct {
	fsys fs.StatFS
	root string
}

// NewUploadService resolves paths against the operating system's file
// system.
func NewUploadService() UploadService {
	return &uploadService{fsys: os.DirFS("/").(fs.StatFS), root: "/"}
}

// NewUploadServiceFS resolves relative paths against fsys. Used in tests.
func NewUploadServiceFS(fsys fs.StatFS) UploadService {
	return &uploadService{fsys: fsys}
}

func (s *uploadService) Prepare(paths []string, applicationID *int64) (models.UploadRequest, error) {
	req := models.UploadRequest{ApplicationID: applicationID}
	if len(paths) == 0 {
		return req, fmt.Errorf("%w: no files given", common.ErrorValidation)
	}

	for _, p := range paths {
		name, err := s.fsPath(p)
		if err != nil {
			return req, err
		}
		info, err := s.fsys.Stat(name)
		if err != nil {
			return req, fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}

		if !info.IsDir() {
			req.Files = append(req.Files, s.file(name, filepath.Base(p)))
			continue
		}

		if applicationID == nil && req.CompanyName == "" {
			req.CompanyName = info.Name()
		}
		if err := s.addDir(&req, name); err != nil {
			return req, err
		}
	}

	if len(req.Files) == 0 {
		return req, fmt.Errorf("%w: no regular files found", common.ErrorValidation)
	}
	return req, nil
}

func (s *uploadService) addDir(req *models.UploadRequest, dir string) error {
	parent := pathDir(dir)
	return fs.WalkDir(s.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel := p
		if parent != "." {
			rel = p[len(parent)+1:]
		}
		req.Files = append(req.Files, s.file(p, rel))
		return nil
	})
}

func (s *uploadService) file(name, uploadName string) models.UploadFile {
	fsys := s.fsys
	return models.UploadFile{
		Name: uploadName,
		Open: func() (io.ReadCloser, error) { return fsys.Open(name) },
	}
}

// fsPath maps an OS path to a path valid for s.fsys.
func (s *uploadService) fsPath(p string) (string, error) {
	if s.root == "" {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func pathDir(p string) string {
	d := filepath.ToSlash(filepath.Dir(filepath.FromSlash(p)))
	if d == "" {
		return "."
	}
	return d
}
