package ports

// Workspace is a temporary directory owned by one build.
type Workspace interface {
	// Root returns the absolute path of the workspace.
	Root() string
	// Close removes the workspace. It never fails and may be called more than once.
	Close()
}

// WorkspaceManager allocates workspaces.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceManager interface {
	// Create allocates a fresh workspace under base.
	Create(base string) (Workspace, error)
}
