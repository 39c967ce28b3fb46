package compilerlog_test

import (
	"html"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildserver/internal/core/ports/mocks"
	"go.trai.ch/buildserver/internal/engine/compilerlog"
	"go.uber.org/mock/gomock"
)

const srcPath = "/tmp/ws/youngandroidproject/../src/"

func TestNormalize_Golden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).Times(4)

	raw := strings.Join([]string{
		"Compiling " + srcPath + "com/example/Foo/Screen1.yail",
		srcPath + "com/example/Foo/Screen1.yail:12:3: warning: unused variable x",
		srcPath + "com/example/Foo/Screen1.yail:20:1: error: unbound <symbol> & more",
		"runtime.scm:100:2: error: internal problem",
		"  at runtime.scm:101",
		"  at runtime.scm:102",
		"Screen1.yail:7:1: missing paren",
		"  continuation shown",
		"done",
		"",
		"",
	}, "\n")

	got := compilerlog.Normalize(raw, srcPath, logger)

	g := goldie.New(t)
	g.Assert(t, "mixed", []byte(got))
}

func TestNormalize_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "warning in generated source",
			line: "Screen1.yail:3:1: warning: shadowed",
			want: "<div><span class='compiler-WarningMarker'>WARNING</span>: Screen1.yail line 3: shadowed</div>",
		},
		{
			name: "missing severity is an error",
			line: "Screen1.yail:4:2: unexpected token",
			want: "<div><span class='compiler-ErrorMarker'>ERROR</span>: Screen1.yail line 4: unexpected token</div>",
		},
		{
			name: "other file is suppressed",
			line: "runtime.scm:1:1: warning: ignored\n  detail one\n  detail two",
			want: "",
		},
		{
			name: "suppression ends at an unindented line",
			line: "runtime.scm:1:1: error: ignored\n  detail\nnext",
			want: "next<br>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			logger := mocks.NewMockLogger(ctrl)
			logger.EXPECT().Info(gomock.Any()).Times(1)

			got := compilerlog.Normalize(tt.line, "", logger)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, strings.Count(got, "<div>"), 1)
		})
	}
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	assert.Empty(t, compilerlog.Normalize("", srcPath, logger))
}

func TestNormalize_PathStripIsIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	raw := "Compiling " + srcPath + "Screen1.yail\nplain & simple\n"
	once := strings.ReplaceAll(raw, srcPath, "")

	assert.Equal(t,
		compilerlog.Normalize(raw, srcPath, logger),
		compilerlog.Normalize(once, srcPath, logger),
	)
	assert.Equal(t, "Compiling Screen1.yail<br>plain &amp; simple<br>", compilerlog.Normalize(once, srcPath, logger))
}

func TestNormalize_TruncatesLoggedMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	long := strings.Repeat("x", 200)
	var logged string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { logged = msg })

	got := compilerlog.Normalize("Screen1.yail:1:1: error: "+long, "", logger)

	assert.Contains(t, got, long)
	assert.Equal(t, "ERROR: Screen1.yail line 1: "+strings.Repeat("x", compilerlog.MaxMessageLength), logged)
}

func TestNormalize_FallsBackOnPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).Do(func(string) { panic("boom") })
	logger.EXPECT().Warn(gomock.Any())

	raw := srcPath + "Screen1.yail:1:1: error: <bad>"
	got := compilerlog.Normalize(raw, srcPath, logger)

	assert.Equal(t, html.EscapeString("Screen1.yail:1:1: error: <bad>"), got)
}
