package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/zerr"
)

// publish copies the deployed package, and a keystore generated during this
// build, into the output directory. A missing package is logged and leaves
// the build successful without an artifact.
func (r *buildRun) publish(bc *domain.BuildContext, keystore string, generated bool) (domain.Artifacts, error) {
	root := bc.Project().Root
	pkg := filepath.Join(domain.DeployPath(root), bc.OutputName())
	if _, err := os.Stat(pkg); err != nil {
		r.app.Logger.Warn(fmt.Sprintf("%s: %s", domain.ErrArtifactMissing.Error(), pkg))
		return domain.Artifacts{}, nil
	}

	out := r.req.OutputDir
	if err := os.MkdirAll(out, domain.DirPerm); err != nil {
		return domain.Artifacts{}, publishError(err, out)
	}

	var artifacts domain.Artifacts
	artifacts.Package = filepath.Join(out, filepath.Base(pkg))
	if err := r.app.Copier.CopyFile(pkg, artifacts.Package); err != nil {
		return domain.Artifacts{}, publishError(err, artifacts.Package)
	}

	digest, err := r.app.Hasher.ComputeDigest(artifacts.Package)
	if err != nil {
		return domain.Artifacts{}, publishError(err, artifacts.Package)
	}
	artifacts.PackageDigest = digest

	if generated {
		artifacts.Keystore = filepath.Join(out, domain.KeystoreFileName)
		if err := r.app.Copier.CopyFile(keystore, artifacts.Keystore); err != nil {
			return domain.Artifacts{}, publishError(err, artifacts.Keystore)
		}
	}

	r.app.Logger.Info("published " + artifacts.Package)
	return artifacts, nil
}

func publishError(err error, path string) error {
	return zerr.With(errors.Join(domain.ErrPublishFailed, err), "path", path)
}
