package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/skeletonlabs/create-skeleton-app/internal/options"
)

// ErrInstall is returned when the package manager reports a failure.
var ErrInstall = errors.New("dependency install failed")

// BasePackages are installed into every project, in this order.
var BasePackages = []string{
	"postcss",
	"autoprefixer",
	"tailwindcss",
	"svelte-preprocess",
	"@brainandbones/skeleton",
}

// Packages returns the ordered install list for cfg: the base packages, then
// one package per enabled plugin in catalog order.
func Packages(cfg *options.Configuration) []string {
	pkgs := append([]string(nil), BasePackages...)
	for _, p := range options.Plugins {
		if cfg.HasPlugin(p) {
			pkgs = append(pkgs, p.Package())
		}
	}
	return pkgs
}

// Output captures the result of one installer invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Installer adds a single dev dependency to the project in dir.
type Installer interface {
	Add(ctx context.Context, dir, pkg string) (*Output, error)
}

// Exec runs the package manager binary as a child process.
type Exec struct {
	// Manager is the package manager name, e.g. "pnpm".
	Manager string
	// Stdout and Stderr receive the child's output as it runs; nil discards.
	Stdout io.Writer
	Stderr io.Writer
}

// Add runs "<manager> add -D <pkg>" in dir and waits for it without a
// timeout. A non-zero exit status is an error. Output on stderr is also an
// error, except for yarn, which reports warnings there.
func (e *Exec) Add(ctx context.Context, dir, pkg string) (*Output, error) {
	manager := e.Manager
	if manager == "" {
		manager = NPM
	}
	bin, err := exec.LookPath(manager)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found on PATH: %v", ErrInstall, manager, err)
	}

	cmd := exec.CommandContext(ctx, bin, AddArgs(manager, pkg)...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = teeTo(e.Stdout, &stdoutBuf)
	cmd.Stderr = teeTo(e.Stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, fmt.Errorf("%w: %s exited with status %d adding %s: %s",
				ErrInstall, manager, output.ExitCode, pkg, firstLine(output.Stderr))
		}
		return output, fmt.Errorf("%w: running %s: %v", ErrInstall, manager, err)
	}

	if manager != Yarn && strings.TrimSpace(output.Stderr) != "" {
		return output, fmt.Errorf("%w: %s reported errors adding %s: %s",
			ErrInstall, manager, pkg, firstLine(output.Stderr))
	}
	return output, nil
}

func teeTo(w io.Writer, buf *bytes.Buffer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if line, _, ok := strings.Cut(s, "\n"); ok {
		return line
	}
	return s
}
