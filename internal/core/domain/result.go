package domain

// Generic user messages.
const (
	MsgExtractionFailed = "Problems processing zip file."
	MsgMetadataFailed   = "Problems reading project properties."
	MsgServerError      = "Server error performing build"
)

// Artifacts references the files a build published.
type Artifacts struct {
	// Package is the published package path, empty when none was produced.
	Package string `json:"package,omitempty"`
	// PackageDigest is the content digest of Package.
	PackageDigest string `json:"package_digest,omitempty"`
	// Keystore is the published keystore path, set only when one was generated.
	Keystore string `json:"keystore,omitempty"`
}

// Result is the outcome of one build invocation.
type Result struct {
	BuildID string
	Success bool
	// Log is the rendered build log.
	Log string
	// UserMessage is a short user-facing summary.
	UserMessage string
	State       BuildState
	// FailedTask names the task that reported a failure, if any.
	FailedTask string
	Artifacts  Artifacts
}

// NewFailingResult returns an unsuccessful result carrying only a message.
func NewFailingResult(buildID, log, userMessage string) Result {
	return Result{
		BuildID:     buildID,
		Log:         log,
		UserMessage: userMessage,
	}
}
