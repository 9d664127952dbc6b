// Package kvstore provides a JSON file-based implementation of domain.Store.
// Each key is persisted as its own document under the data directory, written
// atomically via a temp file and rename, with flock guarding concurrent
// processes.
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/harutoki/focusdeck/internal/domain"
)

// Store implements domain.Store using one JSON file per key.
type Store struct {
	logger   domain.Logger
	dir      string
	lockPath string
}

// New creates a Store rooted at dir. The directory does not need to exist;
// it is created on first write.
func New(dir string, logger domain.Logger) *Store {
	return &Store{
		dir:      dir,
		lockPath: filepath.Join(dir, ".lock"),
		logger:   logger,
	}
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Get decodes the value stored under key into v. Returns false if the key
// is absent or the stored document cannot be decoded.
func (s *Store) Get(key string, v any) bool {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		s.logf("acquire read lock for %q: %v", key, err)
		return false
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logf("read %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(content, v); err != nil {
		s.logf("decode %q: %v", key, err)
		return false
	}
	return true
}

// Set stores v under key. Returns false on encode or write failure; the
// failure is logged but never raised, matching the fire-and-forget
// persistence policy.
func (s *Store) Set(key string, v any) bool {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logf("encode %q: %v", key, err)
		return false
	}

	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		s.logf("acquire write lock for %q: %v", key, err)
		return false
	}
	defer s.releaseLock(lock)

	if err := s.write(s.keyPath(key), content); err != nil {
		s.logf("write %q: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the value stored under key, if any.
func (s *Store) Remove(key string) {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		s.logf("acquire write lock for %q: %v", key, err)
		return
	}
	defer s.releaseLock(lock)

	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		s.logf("remove %q: %v", key, err)
	}
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) write(path string, content []byte) error {
	// Write to temp file first, then rename for atomicity.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) logf(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Error("store", fmt.Sprintf(format, args...))
}

// Ensure Store implements domain.Store.
var _ domain.Store = (*Store)(nil)
