// Package workspace allocates and removes per-build temporary directories.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.WorkspaceManager = (*Manager)(nil)
	_ ports.Workspace        = (*Workspace)(nil)
)

// maxAttempts bounds the number of names tried before giving up.
const maxAttempts = 10000

// Manager creates uniquely named workspaces.
type Manager struct {
	logger   ports.Logger
	now      func() time.Time
	random   func() string
	attempts int
}

// NewManager creates a new Manager.
func NewManager(logger ports.Logger) *Manager {
	return &Manager{
		logger:   logger,
		now:      time.Now,
		random:   uuid.NewString,
		attempts: maxAttempts,
	}
}

// Create allocates a fresh directory under base named
// <unix millis>_<random>-<attempt>. The returned root is absolute.
func (m *Manager) Create(base string) (ports.Workspace, error) {
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrWorkspaceExhausted, err), "base", base)
	}
	if err := os.MkdirAll(base, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrWorkspaceExhausted, err), "base", base)
	}

	prefix := strconv.FormatInt(m.now().UnixMilli(), 10) + "_" + m.random() + "-"
	for attempt := range m.attempts {
		dir := filepath.Join(base, prefix+strconv.Itoa(attempt))
		err := os.Mkdir(dir, domain.DirPerm)
		if err == nil {
			return &Workspace{root: dir, logger: m.logger}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, zerr.With(errors.Join(domain.ErrWorkspaceExhausted, err), "dir", dir)
		}
	}

	return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrWorkspaceExhausted, "no unique name"), "base", base), "attempts", m.attempts)
}

// Workspace is one build's temporary directory.
type Workspace struct {
	root   string
	logger ports.Logger
	once   sync.Once
}

// Root returns the workspace directory.
func (w *Workspace) Root() string {
	return w.root
}

// Close removes the workspace recursively. Failures are logged as warnings, never returned.
func (w *Workspace) Close() {
	w.once.Do(func() {
		path := w.root
		if resolved, err := filepath.EvalSymlinks(w.root); err == nil {
			path = resolved
		}
		if err := os.RemoveAll(path); err != nil {
			w.logger.Warn(fmt.Sprintf("%s: %s: %v", domain.ErrWorkspaceCleanup.Error(), path, err))
		}
	})
}
