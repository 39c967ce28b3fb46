// Package keytool generates signing keystores with the JDK key tool.
package keytool

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KeystoreGenerator = (*Generator)(nil)

// validityDays keeps generated keys valid past the store's minimum expiry date.
const validityDays = 10000

// Generator creates keystores by running the key tool.
type Generator struct {
	runner ports.ToolRunner
}

// NewGenerator creates a new Generator.
func NewGenerator(runner ports.ToolRunner) *Generator {
	return &Generator{runner: runner}
}

// Generate writes a new RSA keystore for userName at path.
func (g *Generator) Generate(ctx context.Context, keytool, userName, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrKeystoreGeneration, err), "path", path)
	}

	if err := g.runner.Run(ctx, domain.ToolCommand{
		Name:    keytool,
		Args:    Args(userName, abs),
		Dir:     filepath.Dir(abs),
		Outputs: []string{abs},
	}, io.Discard, io.Discard); err != nil {
		return zerr.With(errors.Join(domain.ErrKeystoreGeneration, err), "path", abs)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrKeystoreGeneration, err), "path", abs)
	}
	if info.Size() == 0 {
		return zerr.With(zerr.Wrap(domain.ErrKeystoreGeneration, "empty keystore"), "path", abs)
	}
	return nil
}

// Args returns the key tool arguments that create a keystore at path.
func Args(userName, path string) []string {
	return []string{
		"-genkey",
		"-keystore", path,
		"-alias", domain.KeystoreAlias,
		"-keyalg", "RSA",
		"-dname", "CN=" + quote(userName) + ", O=AppInventor for Android, C=US",
		"-validity", strconv.Itoa(validityDays),
		"-storepass", domain.KeystorePassword,
		"-keypass", domain.KeystorePassword,
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
