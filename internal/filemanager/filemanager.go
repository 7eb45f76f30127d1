// Package filemanager provides process-safe, atomically replaced document files.
package filemanager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// ErrLockTimeout is returned when acquiring a file lock times out
var ErrLockTimeout = errors.New("timeout acquiring file lock")

// DecodeError is returned when a file exists but cannot be decoded
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WriteError is returned when encoding or replacing a file fails
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// UpdateFunc is a function that modifies data in-place
type UpdateFunc[T any] func(data *T) error

// Manager reads and writes documents of type T.
// Readers take a shared lock and writers an exclusive one on a sidecar
// "<path>.lock" file, so the document itself can be replaced by rename.
type Manager[T any] struct {
	lockTimeout time.Duration
	codec       Codec
}

// Option configures a Manager
type Option func(*managerConfig)

type managerConfig struct {
	lockTimeout time.Duration
	codec       Codec
}

// WithLockTimeout sets the maximum time to wait for a file lock
func WithLockTimeout(d time.Duration) Option {
	return func(c *managerConfig) {
		if d > 0 {
			c.lockTimeout = d
		}
	}
}

// WithCodec sets the document encoding
func WithCodec(codec Codec) Option {
	return func(c *managerConfig) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// NewManager creates a new file manager. The default codec is YAML.
func NewManager[T any](opts ...Option) *Manager[T] {
	cfg := &managerConfig{
		lockTimeout: 5 * time.Second,
		codec:       YAML,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Manager[T]{
		lockTimeout: cfg.lockTimeout,
		codec:       cfg.codec,
	}
}

// LockPath returns the sidecar lock file used for path
func LockPath(path string) string {
	return path + ".lock"
}

// Read reads a file with a shared lock. A missing file yields an error
// satisfying os.IsNotExist.
func (m *Manager[T]) Read(ctx context.Context, path string) (*T, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	unlock, err := m.acquire(ctx, path, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return m.read(path)
}

// Write replaces a file with an exclusive lock
func (m *Manager[T]) Write(ctx context.Context, path string, data *T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	unlock, err := m.acquire(ctx, path, true)
	if err != nil {
		return err
	}
	defer unlock()

	return m.write(path, data)
}

// Update holds an exclusive lock across read, updateFunc and write.
// When the file does not exist updateFunc receives a zero T.
// If updateFunc fails nothing is written.
func (m *Manager[T]) Update(ctx context.Context, path string, updateFunc UpdateFunc[T]) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	unlock, err := m.acquire(ctx, path, true)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := m.read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		data = new(T)
	}

	if err := updateFunc(data); err != nil {
		return err
	}

	return m.write(path, data)
}

func (m *Manager[T]) acquire(ctx context.Context, path string, exclusive bool) (func(), error) {
	lock := flock.New(LockPath(path))

	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = lock.TryLockContext(lockCtx, 50*time.Millisecond)
	} else {
		locked, err = lock.TryRLockContext(lockCtx, 50*time.Millisecond)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrLockTimeout
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrLockTimeout
	}

	return func() { _ = lock.Unlock() }, nil
}

func (m *Manager[T]) read(path string) (*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var result T
	if err := m.codec.Unmarshal(raw, &result); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return &result, nil
}

func (m *Manager[T]) write(path string, data *T) error {
	encoded, err := m.codec.Marshal(data)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	// The temp file lives next to the target so the rename stays on one filesystem
	tempFile := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := writeSynced(tempFile, encoded); err != nil {
		_ = os.Remove(tempFile)
		return &WriteError{Path: path, Err: err}
	}

	if err := atomicRename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
