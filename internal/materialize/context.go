package materialize

import (
	"io"

	"github.com/charmbracelet/log"
)

// ExecutionContext carries the project root and the output channels of one
// run.
type ExecutionContext struct {
	// Root is the absolute project directory. All writes happen below it.
	Root   string
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// NewExecutionContext returns a context rooted at root. Nil writers discard
// and a nil logger logs nowhere.
func NewExecutionContext(root string, stdout, stderr io.Writer, logger *log.Logger) *ExecutionContext {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ExecutionContext{
		Root:   root,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}
}
