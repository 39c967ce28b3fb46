package domain

import "go.trai.ch/zerr"

var (
	// ErrExtraction is returned when the project archive cannot be unpacked.
	ErrExtraction = zerr.New("failed to extract project archive")

	// ErrUnsafeArchiveEntry is returned when an archive entry resolves outside the destination.
	ErrUnsafeArchiveEntry = zerr.New("archive entry escapes destination")

	// ErrMissingProjectMetadata is returned when project.properties is absent or malformed.
	ErrMissingProjectMetadata = zerr.New("missing or malformed project metadata")

	// ErrIncompleteContext is returned when a build context is constructed without a required field.
	ErrIncompleteContext = zerr.New("incomplete build context")

	// ErrUnsupportedFormat is returned for a package format other than apk or aab.
	ErrUnsupportedFormat = zerr.New("unsupported package format, expected 'apk' or 'aab'")

	// ErrTaskFailed is returned when a task reports a failure.
	ErrTaskFailed = zerr.New("task failed")

	// ErrTaskFault is returned when a task panics or returns an unexpected error.
	ErrTaskFault = zerr.New("task fault")

	// ErrWorkspaceExhausted is returned when no unique workspace directory could be created.
	ErrWorkspaceExhausted = zerr.New("failed to create workspace directory")

	// ErrWorkspaceCleanup is logged when the workspace cannot be removed.
	ErrWorkspaceCleanup = zerr.New("failed to remove workspace directory")

	// ErrArtifactMissing is logged when a successful build produced no artifact.
	ErrArtifactMissing = zerr.New("build artifact not found")

	// ErrPublishFailed is returned when the artifact or keystore cannot be copied to the output directory.
	ErrPublishFailed = zerr.New("failed to publish build output")

	// ErrKeystoreGeneration is returned when the key tool did not produce a usable keystore.
	ErrKeystoreGeneration = zerr.New("failed to generate keystore")

	// ErrToolFailed is returned when an external tool exits unsuccessfully.
	ErrToolFailed = zerr.New("command failed")

	// ErrToolOutputMissing is returned when an external tool did not produce a declared output.
	ErrToolOutputMissing = zerr.New("tool output missing")

	// ErrUnknownComponent is returned when a component type has no build information.
	ErrUnknownComponent = zerr.New("unknown component type")

	// ErrDescriptorParse is returned when a form or blocks file cannot be parsed.
	ErrDescriptorParse = zerr.New("failed to parse descriptor")

	// ErrCatalogLoad is returned when a component descriptor cannot be read.
	ErrCatalogLoad = zerr.New("failed to load component catalog")

	// ErrBuildFailed is returned by the CLI when a build result is unsuccessful.
	ErrBuildFailed = zerr.New("build failed")

	// ErrStoreCreateFailed is returned when the build record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build record store directory")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreUnmarshalFailed is returned when a build record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrStoreMarshalFailed is returned when a build record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidSettings is returned when the loaded settings fail validation.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrFileCopyFailed is returned when copying a file fails.
	ErrFileCopyFailed = zerr.New("failed to copy file")
)
