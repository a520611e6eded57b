package launch

import (
	"os"
	"syscall"
)

// System abstracts the process-replacement operations so tests can observe
// the handoff without actually replacing the test process.
type System interface {
	Environ() []string
	Exec(path string, argv []string, env []string) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// Exec replaces the current process with the target binary.
func (RealSystem) Exec(path string, argv []string, env []string) error {
	return syscall.Exec(path, argv, env)
}
