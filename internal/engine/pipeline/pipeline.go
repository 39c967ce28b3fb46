// Package pipeline runs ordered build tasks against a build context.
package pipeline

import (
	"context"
	"slices"

	"go.trai.ch/buildserver/internal/core/domain"
)

// Task is one stage of a build. Tasks are stateless: everything they read
// comes from the build context and the environment, and anything later tasks
// need is left in Env.State.
//
// A task reports a user actionable problem with a *domain.TaskFailure. Any
// other error is a fault.
type Task interface {
	Name() string
	Run(ctx context.Context, bc *domain.BuildContext, env *Env) error
}

// Pipeline is a named, ordered and immutable list of tasks.
type Pipeline struct {
	name  string
	tasks []Task
}

// New creates a pipeline running tasks in the given order.
func New(name string, tasks ...Task) *Pipeline {
	return &Pipeline{name: name, tasks: slices.Clone(tasks)}
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Len returns the number of tasks.
func (p *Pipeline) Len() int { return len(p.tasks) }

// Tasks returns the tasks in execution order.
func (p *Pipeline) Tasks() []Task { return slices.Clone(p.tasks) }

// TaskNames returns the task names in execution order.
func (p *Pipeline) TaskNames() []string {
	names := make([]string, len(p.tasks))
	for i, t := range p.tasks {
		names[i] = t.Name()
	}
	return names
}
