package domain

// ToolCommand describes one invocation of an external tool.
type ToolCommand struct {
	// Name is the executable, resolved against PATH when not absolute.
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds variables set on top of the allow-listed system environment.
	Env map[string]string
	// Outputs are files the tool must have produced for the run to count as successful.
	Outputs []string
}
