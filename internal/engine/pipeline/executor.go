package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Outcome is how a pipeline run ended.
type Outcome struct {
	// State is StateSucceeded, StateFailed or StateFaulted.
	State domain.BuildState
	// TaskIndex is the index of the task that stopped the run, or -1.
	TaskIndex int
	// Task names the task that stopped the run.
	Task string
	// Reason is the failure reason reported by the task.
	Reason string
	// Err is the failure or fault. It is nil on success.
	Err error
}

// Success reports whether every task ran successfully.
func (o Outcome) Success() bool { return o.State == domain.StateSucceeded }

// Executor runs pipelines on a dedicated worker.
type Executor struct {
	tracer ports.Tracer
	stats  ports.StatReporter
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(tracer ports.Tracer, stats ports.StatReporter, logger ports.Logger) *Executor {
	return &Executor{tracer: tracer, stats: stats, logger: logger}
}

// Run executes the tasks of p in order on a worker goroutine and blocks until
// it is done. The first failure or fault stops the run. When
// env.Settings.BuildTimeout is positive it bounds the whole run.
func (e *Executor) Run(ctx context.Context, p *Pipeline, bc *domain.BuildContext, env *Env) Outcome {
	if timeout := env.Settings.BuildTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var outcome Outcome
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		outcome = e.runAll(gctx, p, bc, env)
		return nil
	})
	_ = g.Wait()

	return outcome
}

func (e *Executor) runAll(ctx context.Context, p *Pipeline, bc *domain.BuildContext, env *Env) Outcome {
	ctx, span := e.tracer.Start(ctx, p.Name())
	defer span.End()

	e.tracer.EmitPlan(ctx, p.TaskNames())

	tasks := p.tasks
	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return e.fault(i, task.Name(), err)
		}

		bc.Reporter().Info(fmt.Sprintf("[%d/%d] %s", i+1, len(tasks), task.Name()))

		start := time.Now()
		err := e.runTask(ctx, task, bc, env)
		e.stats.TaskFinished(task.Name(), time.Since(start), err)
		if err == nil {
			continue
		}

		span.RecordError(err)

		var failure *domain.TaskFailure
		if errors.As(err, &failure) {
			e.logger.Warn(fmt.Sprintf("task %s failed: %s", task.Name(), failure.Reason))
			bc.Reporter().Error(failure.Reason)
			return Outcome{
				State:     domain.StateFailed,
				TaskIndex: i,
				Task:      task.Name(),
				Reason:    failure.Reason,
				Err:       err,
			}
		}
		return e.fault(i, task.Name(), err)
	}

	return Outcome{State: domain.StateSucceeded, TaskIndex: -1}
}

func (e *Executor) fault(index int, name string, err error) Outcome {
	fault := zerr.With(errors.Join(domain.ErrTaskFault, err), "task", name)
	e.logger.Error(fault)
	return Outcome{
		State:     domain.StateFaulted,
		TaskIndex: index,
		Task:      name,
		Err:       fault,
	}
}

// runTask runs one task inside its own span. Tool output goes to the span
// and the reporter. A panic is turned into an error.
func (e *Executor) runTask(ctx context.Context, task Task, bc *domain.BuildContext, env *Env) (err error) {
	ctx, span := e.tracer.Start(ctx, task.Name())
	defer span.End()

	env.Output = io.MultiWriter(span, bc.Reporter())
	defer func() {
		env.Output = io.Discard
	}()

	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.New(fmt.Sprintf("panic: %v", r)), "task", task.Name())
		}
		if err != nil {
			span.RecordError(err)
		}
	}()

	return task.Run(ctx, bc, env)
}
