package domain

import "time"

// BuildRecord is the persisted summary of one build.
type BuildRecord struct {
	ID         string        `json:"id"`
	Project    string        `json:"project"`
	Format     PackageFormat `json:"format"`
	Success    bool          `json:"success"`
	State      BuildState    `json:"state"`
	FailedTask string        `json:"failed_task,omitempty"`
	Artifacts  Artifacts     `json:"artifacts"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
}
