package domain

import "fmt"

// TaskFailure is a failure reported by a task, such as a compile error.
// It is user actionable, unlike a fault.
type TaskFailure struct {
	Task   string
	Reason string
}

// NewTaskFailure creates a failure for the named task.
func NewTaskFailure(task, reason string) *TaskFailure {
	return &TaskFailure{Task: task, Reason: reason}
}

func (f *TaskFailure) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrTaskFailed.Error(), f.Task, f.Reason)
}

// Is lets errors.Is match ErrTaskFailed.
func (f *TaskFailure) Is(target error) bool {
	return target == ErrTaskFailed
}
