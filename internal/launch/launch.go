// Package launch hands control to the cached pip. The cache root is given
// import priority over any ambient pip via PYTHONPATH and the process
// image is replaced, so pip's exit status becomes the process's.
package launch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/pyenv"
)

const pythonPathKey = "PYTHONPATH="

// ErrLaunched signals that execution was handed off to pip. It is only
// observable when the exec seam is replaced in tests; a real exec does not
// return on success.
var ErrLaunched = errors.New(messages.LaunchErrLaunched)

// Pip execs the interpreter with pip's command-line entry point and the
// passthrough args, with cacheRoot prepended to the module search path.
// Control does not return on success.
func Pip(sys System, interpreter pyenv.Interpreter, cacheRoot string, args []string) error {
	if sys == nil {
		return fmt.Errorf(messages.LaunchSystemRequired)
	}
	if interpreter.Path == "" {
		return fmt.Errorf(messages.LaunchInterpreterRequired)
	}

	env := withPythonPath(sys.Environ(), cacheRoot)
	argv := append([]string{interpreter.Path, "-m", "pip"}, args...)
	if err := sys.Exec(interpreter.Path, argv, env); err != nil {
		return fmt.Errorf(messages.LaunchExecFailedFmt, interpreter.Path, err)
	}
	return ErrLaunched
}

// withPythonPath prepends cacheRoot to PYTHONPATH in a copy of environ.
func withPythonPath(environ []string, cacheRoot string) []string {
	out := make([]string, 0, len(environ)+1)
	seen := false
	for _, kv := range environ {
		if !strings.HasPrefix(kv, pythonPathKey) {
			out = append(out, kv)
			continue
		}
		seen = true
		existing := strings.TrimPrefix(kv, pythonPathKey)
		if existing == "" {
			out = append(out, pythonPathKey+cacheRoot)
			continue
		}
		out = append(out, pythonPathKey+cacheRoot+string(os.PathListSeparator)+existing)
	}
	if !seen {
		out = append(out, pythonPathKey+cacheRoot)
	}
	return out
}
