package sheet

import (
	"context"
	"errors"
	"os"

	"github.com/aki/ti/internal/filemanager"
	"github.com/aki/ti/internal/logger"
)

// FileStore implements Store on a single JSON file. Updates hold an advisory
// lock from load until the replacement file is in place.
type FileStore struct {
	path   string
	mgr    *filemanager.Manager[Sheet]
	logger logger.Logger
}

// NewFileStore creates a store for the sheet at path
func NewFileStore(path string, log logger.Logger, opts ...filemanager.Option) *FileStore {
	if log == nil {
		log = logger.Nop()
	}
	opts = append([]filemanager.Option{filemanager.WithCodec(filemanager.JSON)}, opts...)
	return &FileStore{
		path:   path,
		mgr:    filemanager.NewManager[Sheet](opts...),
		logger: log.With("sheet", path),
	}
}

// Load implements Store
func (s *FileStore) Load(ctx context.Context) (*Sheet, error) {
	sh, err := s.mgr.Read(ctx, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("sheet does not exist yet")
			return New(), nil
		}
		return nil, s.classify(err)
	}

	if err := sh.Validate(); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	sh.normalize()

	s.logger.Debug("loaded sheet", "work", len(sh.Work), "interrupts", sh.Depth())
	return sh, nil
}

// Save implements Store
func (s *FileStore) Save(ctx context.Context, sh *Sheet) error {
	sh.normalize()
	if err := s.mgr.Write(ctx, s.path, sh); err != nil {
		return s.classify(err)
	}
	s.logger.Debug("saved sheet", "work", len(sh.Work), "interrupts", sh.Depth())
	return nil
}

// Update implements Store
func (s *FileStore) Update(ctx context.Context, fn UpdateFunc) error {
	err := s.mgr.Update(ctx, s.path, func(sh *Sheet) error {
		if err := sh.Validate(); err != nil {
			return &CorruptError{Path: s.path, Err: err}
		}
		sh.normalize()

		if err := fn(sh); err != nil {
			return err
		}
		sh.normalize()
		return nil
	})
	if err != nil {
		return s.classify(err)
	}

	s.logger.Debug("updated sheet")
	return nil
}

// classify maps filemanager failures onto the sheet error kinds. Errors from
// update functions pass through untouched.
func (s *FileStore) classify(err error) error {
	var decodeErr *filemanager.DecodeError
	if errors.As(err, &decodeErr) {
		return &CorruptError{Path: s.path, Err: decodeErr.Err}
	}

	var writeErr *filemanager.WriteError
	if errors.As(err, &writeErr) {
		return &PersistError{Path: s.path, Err: writeErr.Err}
	}

	return err
}
