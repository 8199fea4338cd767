package executil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mantw/mantw-cli/internal/config"
)

// Streams are the output streams handed to a child process. Nil fields
// default to the process's own stdout and stderr.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Process is a started child that nobody has waited for yet.
type Process struct {
	cmd *exec.Cmd
}

// Start launches c with extra appended to its arguments. The argv is passed
// to the OS as is; no shell is involved. Stdin is /dev/null. Start does not
// wait for the child to exit.
func Start(c config.Command, s Streams, extra ...string) (*Process, error) {
	if c.IsZero() {
		return nil, errors.New("empty command")
	}
	args := append(append([]string{}, c.Args...), extra...)
	cmd := exec.Command(c.Program, args...)
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", c.Program, err)
	}
	return &Process{cmd: cmd}, nil
}

// Wait blocks until the child exits and reports a non-zero exit code as an error.
func (p *Process) Wait() error {
	err := p.cmd.Wait()
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return fmt.Errorf("%s exited with code %d", p.cmd.Path, ee.ExitCode())
	}
	return err
}
