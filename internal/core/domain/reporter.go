package domain

import (
	"strings"
	"sync"
)

// Reporter collects the output of one build.
// System output receives raw tool output and is what the log normalizer
// renders. User output receives short progress messages.
type Reporter struct {
	mu     sync.Mutex
	system strings.Builder
	user   strings.Builder
}

// NewReporter creates an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Write appends raw tool output to the system output.
func (r *Reporter) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.system.Write(p)
}

// Info records a progress message.
func (r *Reporter) Info(msg string) {
	r.record("", msg)
}

// Warn records a warning.
func (r *Reporter) Warn(msg string) {
	r.record("WARNING: ", msg)
}

// Error records an error message.
func (r *Reporter) Error(msg string) {
	r.record("ERROR: ", msg)
}

func (r *Reporter) record(prefix, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	line := prefix + msg + "\n"
	r.user.WriteString(line)
	r.system.WriteString(line)
}

// SystemOutput returns everything written so far.
func (r *Reporter) SystemOutput() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.system.String()
}

// UserOutput returns the progress messages recorded so far.
func (r *Reporter) UserOutput() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.user.String()
}
