// Package toolrun invokes external command-line tools. Every call uses
// exec.Command with an explicit args slice — no shell eval. Child output is
// captured, not streamed: a run is silent unless it fails, in which case the
// returned error carries the tail of the child's combined output.
package toolrun

import (
	"fmt"
	"os/exec"
	"strings"
)

// outputTailLines bounds how much child output a failure error carries.
const outputTailLines = 50

// Invocation is a typed request to run one external tool.
type Invocation struct {
	// Name is the executable looked up on PATH.
	Name string
	// Args is the explicit argument list, never joined through a shell.
	Args []string
	// Dir is the working directory for the child; empty means inherit.
	Dir string
}

// String renders the invocation the way a user would type it, for logging.
func (inv Invocation) String() string {
	if len(inv.Args) == 0 {
		return inv.Name
	}
	return inv.Name + " " + strings.Join(inv.Args, " ")
}

// Runner executes invocations. The production implementation shells out;
// tests substitute a recording fake.
type Runner interface {
	Run(inv Invocation) error
}

// ExecRunner runs invocations with os/exec, blocking until the child exits.
type ExecRunner struct{}

// Run executes inv and returns nil on a zero exit. A non-zero exit or a
// failure to start returns an error containing the last lines of the child's
// combined stdout/stderr.
func (ExecRunner) Run(inv Invocation) error {
	cmd := exec.Command(inv.Name, inv.Args...)
	cmd.Dir = inv.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w", inv.String(), wrapOutput(err, out))
	}
	return nil
}

// wrapOutput returns an error that includes the last outputTailLines lines of
// command output.
func wrapOutput(err error, output []byte) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > outputTailLines {
		lines = lines[len(lines)-outputTailLines:]
	}
	return fmt.Errorf("%w\n%s", err, strings.Join(lines, "\n"))
}
