package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pipboot/pipboot/internal/bootstrap"
	"github.com/pipboot/pipboot/internal/cachedir"
	"github.com/pipboot/pipboot/internal/config"
	"github.com/pipboot/pipboot/internal/index"
	"github.com/pipboot/pipboot/internal/launch"
	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/pyenv"
)

var (
	executeFunc         = execute
	bootstrapAndRunFunc = bootstrapAndRun
	resolveEnvFunc      = resolveEnvironment
	ensureFunc          = bootstrap.Ensure
	launchFunc          = launch.Pip
)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// cliCommands are the names handled by pipboot itself. Anything else on
// the command line belongs to pip and is passed through untouched.
var cliCommands = map[string]bool{
	messages.UpgradeUse: true,
	messages.DoctorUse:  true,
	messages.InitUse:    true,
	messages.VersionUse: true,
	"help":              true,
}

// shouldRunCLI reports whether the first argument names a pipboot command.
// Flags are deliberately not inspected: `pipboot --version` must reach pip,
// which has its own --version.
func shouldRunCLI(args []string) bool {
	if len(args) < 2 {
		return false
	}
	return cliCommands[strings.TrimSpace(args[1])]
}

// runMain routes between the pipboot CLI and the pip passthrough path,
// exiting on fatal errors.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if shouldRunCLI(args) {
		if err := executeFunc(args, stdout, stderr); err != nil {
			exit(1)
		}
		return
	}

	var pipArgs []string
	if len(args) > 1 {
		pipArgs = args[1:]
	}
	if err := bootstrapAndRunFunc(pipArgs, stderr); err != nil {
		if errors.Is(err, launch.ErrLaunched) {
			return
		}
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// environment is everything one bootstrap decision needs, resolved once
// at process start.
type environment struct {
	settings  config.Settings
	interp    pyenv.Interpreter
	cacheRoot string
	resolver  *index.Resolver
}

// resolveEnvironment loads settings, discovers the interpreter, and
// resolves the per-version cache root. An unsupported interpreter is fatal
// here, before anything touches the network or the cache.
func resolveEnvironment() (environment, error) {
	settings, err := config.Resolve(config.RealSystem{}, runtime.GOOS)
	if err != nil {
		return environment{}, err
	}
	interp, err := pyenv.Discover(pyenv.RealSystem{}, settings.Python)
	if err != nil {
		return environment{}, err
	}
	if !interp.Version.Supported() {
		return environment{}, fmt.Errorf(messages.UnsupportedInterpreterFmt, interp.Version, interp.Path)
	}
	cacheRoot, err := cachedir.Resolve(cachedir.RealSystem{}, runtime.GOOS, interp.Version, settings.CacheDir)
	if err != nil {
		return environment{}, err
	}
	return environment{
		settings:  settings,
		interp:    interp,
		cacheRoot: cacheRoot,
		resolver:  index.NewResolver(indexBaseURL(settings)),
	}, nil
}

// indexBaseURL returns the configured index or the default.
func indexBaseURL(settings config.Settings) string {
	if settings.IndexURL != "" {
		return settings.IndexURL
	}
	return index.DefaultBaseURL
}

// bootstrapAndRun makes sure pip is cached for the target interpreter and
// hands the process over to it. On success control does not return.
func bootstrapAndRun(pipArgs []string, stderr io.Writer) error {
	env, err := resolveEnvFunc()
	if err != nil {
		return err
	}
	opts := bootstrap.Options{
		Interpreter: env.interp,
		CacheRoot:   env.cacheRoot,
		Resolver:    env.resolver,
		NoNetwork:   env.settings.NoNetwork,
		Stderr:      stderr,
	}
	if err := ensureFunc(opts); err != nil {
		return err
	}
	return launchFunc(launch.RealSystem{}, env.interp, env.cacheRoot, pipArgs)
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
