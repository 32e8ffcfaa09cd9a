package materialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/skeletonlabs/create-skeleton-app/internal/options"
	"github.com/skeletonlabs/create-skeleton-app/internal/pkgmanager"
	"github.com/skeletonlabs/create-skeleton-app/internal/scaffold"
)

var (
	// ErrTargetExists is returned by the guard check when the project
	// directory is already present.
	ErrTargetExists = errors.New("target directory already exists")
	// ErrWrite marks a filesystem failure after the guard check passed.
	ErrWrite = errors.New("writing project files")
)

// Result describes how far a run got and what it produced.
type Result struct {
	// State is Done or Aborted.
	State State
	// FailedAt is the step that stopped an aborted run.
	FailedAt State
	Root     string
	// Files lists every file written, slash-separated and relative to Root,
	// in write order. A file written twice appears once.
	Files    []string
	Packages []string
}

func (r *Result) addFiles(files ...string) {
	for _, f := range files {
		dup := false
		for _, have := range r.Files {
			if have == f {
				dup = true
				break
			}
		}
		if !dup {
			r.Files = append(r.Files, f)
		}
	}
}

// Materializer creates projects from resolved configurations.
type Materializer struct {
	Scaffolder scaffold.Scaffolder
	Installer  pkgmanager.Installer
	// Templates is the catalog the template overlay reads from.
	Templates fs.FS
}

// run is the state shared by the steps of one run.
type run struct {
	exec   *ExecutionContext
	cfg    *options.Configuration
	result *Result
}

// step is a single stage in the materialization chain.
type step interface {
	State() State
	Run(ctx context.Context, r *run) error
}

// steps returns the chain in execution order.
func (m *Materializer) steps() []step {
	return []step{
		guardCheck{templates: m.Templates},
		baseScaffold{scaffolder: m.Scaffolder},
		dependencyInstall{installer: m.Installer},
		configEmit{},
		templateOverlay{templates: m.Templates},
		themePatch{},
	}
}

// Run executes the chain for cfg in exec.Root. The returned Result is never
// nil; on error its State is Aborted and FailedAt names the failing step.
func (m *Materializer) Run(ctx context.Context, exec *ExecutionContext, cfg *options.Configuration) (*Result, error) {
	result := &Result{Root: exec.Root}
	if m.Scaffolder == nil || m.Installer == nil || m.Templates == nil {
		result.State = Aborted
		return result, errors.New("materializer is missing a scaffolder, installer or template catalog")
	}

	r := &run{exec: exec, cfg: cfg, result: result}
	for _, s := range m.steps() {
		result.State = s.State()
		exec.Logger.Debug("Entering step", "step", s.State())
		if err := s.Run(ctx, r); err != nil {
			result.FailedAt = s.State()
			result.State = Aborted
			return result, fmt.Errorf("%s: %w", s.State(), err)
		}
	}
	result.State = Done
	return result, nil
}
