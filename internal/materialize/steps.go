package materialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/skeletonlabs/create-skeleton-app/internal/catalog"
	"github.com/skeletonlabs/create-skeleton-app/internal/generate"
	"github.com/skeletonlabs/create-skeleton-app/internal/overlay"
	"github.com/skeletonlabs/create-skeleton-app/internal/pkgmanager"
	"github.com/skeletonlabs/create-skeleton-app/internal/scaffold"
)

// guardCheck refuses an existing target and an unknown template. It never
// writes.
type guardCheck struct {
	templates fs.FS
}

func (guardCheck) State() State { return GuardCheck }

func (s guardCheck) Run(_ context.Context, r *run) error {
	_, err := os.Lstat(r.exec.Root)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, r.exec.Root)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", r.exec.Root, err)
	}

	if _, err := catalog.Find(s.templates, r.cfg.TemplateID); err != nil {
		return err
	}
	return nil
}

type baseScaffold struct {
	scaffolder scaffold.Scaffolder
}

func (baseScaffold) State() State { return BaseScaffold }

func (s baseScaffold) Run(ctx context.Context, r *run) error {
	r.exec.Logger.Info("Creating project", "path", r.exec.Root, "template", r.cfg.Template)
	res, err := s.scaffolder.Scaffold(ctx, r.exec.Root, r.cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	r.result.addFiles(res.Files...)
	return nil
}

// dependencyInstall adds every package with its own installer call, in
// order, and stops at the first failure.
type dependencyInstall struct {
	installer pkgmanager.Installer
}

func (dependencyInstall) State() State { return DependencyInstall }

func (s dependencyInstall) Run(ctx context.Context, r *run) error {
	for _, pkg := range pkgmanager.Packages(r.cfg) {
		r.exec.Logger.Info("Installing", "package", pkg, "with", r.cfg.PackageManager)
		out, err := s.installer.Add(ctx, r.exec.Root, pkg)
		if r.cfg.Verbose && out != nil {
			fmt.Fprint(r.exec.Stdout, out.Stdout)
			fmt.Fprint(r.exec.Stderr, out.Stderr)
		}
		if err != nil {
			if !errors.Is(err, pkgmanager.ErrInstall) {
				err = fmt.Errorf("%w: %w", pkgmanager.ErrInstall, err)
			}
			return fmt.Errorf("installing %s: %w", pkg, err)
		}
		r.result.Packages = append(r.result.Packages, pkg)
	}
	return nil
}

type configEmit struct{}

func (configEmit) State() State { return ConfigEmit }

func (configEmit) Run(_ context.Context, r *run) error {
	for _, f := range generate.Files(r.cfg) {
		dest := filepath.Join(r.exec.Root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("%w: creating directory for %s: %v", ErrWrite, f.Path, err)
		}
		if err := os.WriteFile(dest, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWrite, f.Path, err)
		}
		r.exec.Logger.Debug("Wrote config", "file", f.Path)
		r.result.addFiles(f.Path)
	}
	return nil
}

type templateOverlay struct {
	templates fs.FS
}

func (templateOverlay) State() State { return TemplateOverlay }

func (s templateOverlay) Run(ctx context.Context, r *run) error {
	r.exec.Logger.Info("Applying template", "template", r.cfg.TemplateID)
	files, err := overlay.Apply(ctx, r.exec.Root, s.templates, r.cfg.TemplateID)
	r.result.addFiles(files...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// themePatch writes the chosen theme back into the layout import and the
// body tag, whatever the template left there.
type themePatch struct{}

func (themePatch) State() State { return ThemePatch }

func (themePatch) Run(_ context.Context, r *run) error {
	n, err := overlay.PatchTheme(r.exec.Root, r.cfg.Theme)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if n == 0 {
		r.exec.Logger.Warn("No theme import found in layout", "file", generate.LayoutFile)
	}
	if _, err := overlay.PatchBody(r.exec.Root, r.cfg.Theme); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
