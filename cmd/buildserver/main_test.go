package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildserver/internal/app"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller, loader *mocks.MockConfigLoader) *app.Components {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	stats := mocks.NewMockStatReporter(ctrl)
	stats.EXPECT().BuildFinished(gomock.Any(), gomock.Any()).AnyTimes()

	application := app.New(app.Deps{
		ConfigLoader: loader,
		Logger:       logger,
		Stats:        stats,
	})
	return &app.Components{App: application, Logger: logger}
}

// TestRun_Version verifies that the run function returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	components := newComponents(ctrl, mocks.NewMockConfigLoader(ctrl))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "buildserver version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_BuildFailure verifies that an unsuccessful build exits with 1 and
// prints the user message.
func TestRun_BuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("").Return(nil, errors.New("load failed"))
	components := newComponents(ctrl, loader)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build", "project.aia"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stdout.String(), domain.MsgServerError)
}

// TestRun_Signal verifies that a cancelled context reaches the build.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockCh := make(chan struct{})
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(string) (*domain.Settings, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})
	components := newComponents(ctrl, loader)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"build", "project.aia"}, new(bytes.Buffer), new(bytes.Buffer),
			func(context.Context) (*app.Components, func(), error) {
				return components, func() {}, nil
			})
	}()

	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
