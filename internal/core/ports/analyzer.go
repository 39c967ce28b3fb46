package ports

import "go.trai.ch/buildserver/internal/core/domain"

// DescriptorAnalyzer extracts build metadata from descriptor file contents.
// Implementations must be pure functions of their input.
//
//go:generate mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type DescriptorAnalyzer interface {
	// ComponentNames returns the component names used by a form file.
	ComponentNames(content []byte) ([]string, error)
	// Orientation returns the screen orientation declared by a form file.
	Orientation(content []byte) (string, error)
	// AnalyzeBlocks returns what a blocks file reveals about components,
	// permissions and storage scopes.
	AnalyzeBlocks(content []byte) (domain.BlockAnalysis, error)
}
