package pyenv

import (
	"os/exec"
)

// System abstracts the OS operations needed for interpreter discovery.
// Kept package-local so tests can fabricate interpreters without touching
// PATH or spawning real processes.
type System interface {
	LookPath(file string) (string, error)
	CommandOutput(name string, args ...string) ([]byte, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath searches PATH for an executable named file.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CommandOutput runs the command and returns its standard output.
func (RealSystem) CommandOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}
