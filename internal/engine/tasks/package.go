package tasks

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// RunApkBuilder assembles the unsigned apk from the packaged resources, the
// dex files and the native libraries.
type RunApkBuilder struct{}

func (RunApkBuilder) Name() string { return NameRunApkBuilder }

func (RunApkBuilder) Run(_ context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	out := tmpPath(bc, bc.Project().Name+"-unsigned.apk")
	extra, err := packageEntries(bc, env, "")
	if err != nil {
		return err
	}
	if err := assemble(out, env.State.ResourcePackage, nil, extra); err != nil {
		return err
	}
	env.State.UnsignedPackage = out
	return nil
}

// RunZipAlign aligns the unsigned apk.
type RunZipAlign struct{}

func (RunZipAlign) Name() string { return NameRunZipAlign }

func (t RunZipAlign) Run(ctx context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	out := tmpPath(bc, bc.Project().Name+"-aligned.apk")
	cmd := domain.ToolCommand{
		Name:    env.Settings.Toolchain.Zipalign,
		Args:    []string{"-f", "-p", "4", env.State.UnsignedPackage, out},
		Dir:     bc.Project().Root,
		Outputs: []string{out},
	}
	if err := runTool(ctx, env, t.Name(), cmd); err != nil {
		return err
	}
	env.State.AlignedPackage = out
	return nil
}

// RunApkSigner signs the aligned apk into the deploy directory.
type RunApkSigner struct{}

func (RunApkSigner) Name() string { return NameRunApkSigner }

func (t RunApkSigner) Run(ctx context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	out, err := deployTarget(bc)
	if err != nil {
		return err
	}
	cmd := domain.ToolCommand{
		Name: env.Settings.Toolchain.Apksigner,
		Args: []string{
			"sign",
			"--ks", bc.KeystorePath(),
			"--ks-key-alias", domain.KeystoreAlias,
			"--ks-pass", "pass:" + domain.KeystorePassword,
			"--key-pass", "pass:" + domain.KeystorePassword,
			"--out", out,
			env.State.AlignedPackage,
		},
		Dir:     bc.Project().Root,
		Outputs: []string{out},
	}
	return runTool(ctx, env, t.Name(), cmd)
}

// RunBundletool builds the base module, bundles it and signs the bundle into
// the deploy directory.
type RunBundletool struct{}

func (RunBundletool) Name() string { return NameRunBundletool }

func (t RunBundletool) Run(ctx context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	module := tmpPath(bc, "base.zip")
	rename := func(name string) string {
		if name == manifestName {
			return "manifest/" + manifestName
		}
		return name
	}
	extra, err := packageEntries(bc, env, "dex/")
	if err != nil {
		return err
	}
	if err := assemble(module, env.State.ResourcePackage, rename, extra); err != nil {
		return err
	}

	unsigned := tmpPath(bc, bc.Project().Name+"-unsigned.aab")
	build := domain.ToolCommand{
		Name: env.Settings.Toolchain.Java,
		Args: []string{
			javaHeap(bc, env),
			"-jar", env.Settings.Toolchain.BundletoolJar,
			"build-bundle",
			"--modules=" + module,
			"--output=" + unsigned,
			"--overwrite",
		},
		Dir:     bc.Project().Root,
		Outputs: []string{unsigned},
	}
	if err := runTool(ctx, env, t.Name(), build); err != nil {
		return err
	}

	out, err := deployTarget(bc)
	if err != nil {
		return err
	}
	sign := domain.ToolCommand{
		Name: env.Settings.Toolchain.Jarsigner,
		Args: []string{
			"-sigalg", "SHA256withRSA",
			"-digestalg", "SHA-256",
			"-keystore", bc.KeystorePath(),
			"-storepass", domain.KeystorePassword,
			"-keypass", domain.KeystorePassword,
			"-signedjar", out,
			unsigned,
			domain.KeystoreAlias,
		},
		Dir:     bc.Project().Root,
		Outputs: []string{out},
	}
	return runTool(ctx, env, t.Name(), sign)
}

func deployTarget(bc *domain.BuildContext) (string, error) {
	deploy := domain.DeployPath(bc.Project().Root)
	if err := mkdirs(deploy); err != nil {
		return "", err
	}
	return filepath.Join(deploy, bc.OutputName()), nil
}

// packageEntries maps archive entry names to the dex files and native
// libraries of the build. Dex files are placed under dexPrefix.
func packageEntries(bc *domain.BuildContext, env *pipeline.Env, dexPrefix string) (map[string]string, error) {
	entries := make(map[string]string)
	for _, dex := range env.State.DexFiles {
		entries[dexPrefix+filepath.Base(dex)] = dex
	}
	libs := buildPath(bc, libDirName)
	found, err := env.Finder.FilesWithSuffix(libs, "")
	if err != nil {
		return nil, err
	}
	for _, lib := range found {
		rel, err := filepath.Rel(libs, lib)
		if err != nil {
			continue
		}
		entries[libDirName+"/"+filepath.ToSlash(rel)] = lib
	}
	return entries, nil
}

// assemble writes a zip at out holding every entry of base, renamed by
// rename when set, followed by extra entries in name order.
func assemble(out, base string, rename func(string) string, extra map[string]string) (err error) {
	src, err := zip.OpenReader(base)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open resource package"), "path", base)
	}
	defer src.Close() //nolint:errcheck // Read-only archive

	f, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create package"), "path", out)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = zerr.With(zerr.Wrap(cerr, "failed to write package"), "path", out)
		}
	}()

	w := zip.NewWriter(f)
	for _, entry := range src.File {
		if rename != nil {
			header := entry.FileHeader
			header.Name = rename(entry.Name)
			if err := copyEntry(w, &header, entry); err != nil {
				return zerr.With(err, "entry", entry.Name)
			}
			continue
		}
		if err := w.Copy(entry); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to copy entry"), "entry", entry.Name)
		}
	}

	for _, name := range domain.SortedKeys(extra) {
		if err := addFile(w, name, extra[name]); err != nil {
			return zerr.With(err, "entry", name)
		}
	}

	if err := w.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to finish package"), "path", out)
	}
	return nil
}

func copyEntry(w *zip.Writer, header *zip.FileHeader, entry *zip.File) error {
	raw, err := entry.OpenRaw()
	if err != nil {
		return zerr.Wrap(err, "failed to read entry")
	}
	dst, err := w.CreateRaw(header)
	if err != nil {
		return zerr.Wrap(err, "failed to create entry")
	}
	if _, err := io.Copy(dst, raw); err != nil {
		return zerr.Wrap(err, "failed to copy entry")
	}
	return nil
}

func addFile(w *zip.Writer, name, path string) error {
	in, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, "failed to open file")
	}
	defer in.Close() //nolint:errcheck // Read-only file

	dst, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return zerr.Wrap(err, "failed to create entry")
	}
	if _, err := io.Copy(dst, in); err != nil {
		return zerr.Wrap(err, "failed to copy file")
	}
	return nil
}
