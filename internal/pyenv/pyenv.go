// Package pyenv discovers the target Python interpreter and probes its
// version. The interpreter is never mutated; pip is installed into a
// separate cache directory and only made importable at launch time.
package pyenv

import (
	"fmt"
	"strings"

	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/pyversion"
)

// probeExpr prints the running interpreter's major.minor version. It is
// compatible with every version the bootstrap can encounter, 2.7 included.
const probeExpr = "import sys; sys.stdout.write('%d.%d' % sys.version_info[:2])"

// candidateNames are tried in order when no interpreter is configured.
var candidateNames = []string{"python3", "python"}

// Interpreter is a resolved target interpreter.
type Interpreter struct {
	Path    string
	Version pyversion.Version
}

// Discover resolves the target interpreter. A non-empty configured value
// (from config or environment) is used verbatim after a PATH lookup;
// otherwise the conventional interpreter names are searched in order.
func Discover(sys System, configured string) (Interpreter, error) {
	if sys == nil {
		return Interpreter{}, fmt.Errorf(messages.PyEnvSystemRequired)
	}

	if trimmed := strings.TrimSpace(configured); trimmed != "" {
		path, err := sys.LookPath(trimmed)
		if err != nil {
			return Interpreter{}, fmt.Errorf(messages.PyEnvConfiguredNotFoundFmt, trimmed, err)
		}
		return probe(sys, path)
	}

	for _, name := range candidateNames {
		path, err := sys.LookPath(name)
		if err != nil {
			continue
		}
		return probe(sys, path)
	}
	return Interpreter{}, fmt.Errorf(messages.PyEnvNoInterpreterFmt, strings.Join(candidateNames, ", "))
}

// probe runs the interpreter to read its major.minor version.
func probe(sys System, path string) (Interpreter, error) {
	out, err := sys.CommandOutput(path, "-c", probeExpr)
	if err != nil {
		return Interpreter{}, fmt.Errorf(messages.PyEnvProbeFailedFmt, path, err)
	}
	version, err := pyversion.Parse(string(out))
	if err != nil {
		return Interpreter{}, fmt.Errorf(messages.PyEnvProbeOutputInvalidFmt, path, err)
	}
	return Interpreter{Path: path, Version: version}, nil
}
