// Package metrics records build statistics with Prometheus collectors.
package metrics

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StatReporter = (*Collector)(nil)

const namespace = "buildserver"

// Collector implements ports.StatReporter on a private registry.
type Collector struct {
	registry      *prometheus.Registry
	buildsStarted *prometheus.CounterVec
	buildsDone    *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	taskDuration  *prometheus.HistogramVec
	taskFailures  *prometheus.CounterVec
}

// NewCollector creates a Collector with all metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		buildsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_started_total",
			Help:      "Builds started, by package format.",
		}, []string{"format"}),
		buildsDone: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_finished_total",
			Help:      "Builds finished, by final state.",
		}, []string{"state"}),
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Wall time of whole builds.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"state"}),
		taskDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_duration_seconds",
			Help:      "Wall time of pipeline tasks.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"task"}),
		taskFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_failures_total",
			Help:      "Pipeline tasks that did not succeed.",
		}, []string{"task"}),
	}

	c.registry.MustRegister(c.buildsStarted, c.buildsDone, c.buildDuration, c.taskDuration, c.taskFailures)
	return c
}

// Registry returns the registry the metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// BuildStarted records the start of a build.
func (c *Collector) BuildStarted(format domain.PackageFormat) {
	c.buildsStarted.WithLabelValues(format.String()).Inc()
}

// TaskFinished records one task run.
func (c *Collector) TaskFinished(task string, elapsed time.Duration, err error) {
	c.taskDuration.WithLabelValues(task).Observe(elapsed.Seconds())
	if err != nil {
		c.taskFailures.WithLabelValues(task).Inc()
	}
}

// BuildFinished records the outcome of a build.
func (c *Collector) BuildFinished(result domain.Result, elapsed time.Duration) {
	state := result.State.String()
	c.buildsDone.WithLabelValues(state).Inc()
	c.buildDuration.WithLabelValues(state).Observe(elapsed.Seconds())
}

// Flush writes the metrics in the text exposition format to path.
func (c *Collector) Flush(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create metrics directory"), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}
