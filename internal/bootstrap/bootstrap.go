// Package bootstrap is the fetch-or-reuse decision core: given a cache
// root, an interpreter, and an index resolver, it decides whether a fresh
// download is required and drives resolve, fetch, install, and prune when
// the cache is cold.
//
// Warm detection is the presence of the pip subdirectory and nothing more.
// A partially populated cache (for example an install interrupted
// mid-prune) is indistinguishable from a valid one until an explicit
// rebuild; whether a completion marker should harden this is deliberately
// left open.
package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pipboot/pipboot/internal/fetch"
	"github.com/pipboot/pipboot/internal/installer"
	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/pyenv"
	"github.com/pipboot/pipboot/internal/pyversion"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=State -trimprefix=State

// State is the cache gate state for one interpreter version.
type State int

// StateCold means no pip subdirectory exists under the cache root;
// StateWarm means one does.
const (
	StateCold State = iota
	StateWarm
)

// URLResolver produces the installer URL for an interpreter version.
type URLResolver interface {
	InstallerURL(version pyversion.Version) (string, error)
}

// Options carries everything one gate decision needs. All values are
// computed once at process start and threaded in explicitly.
type Options struct {
	Interpreter pyenv.Interpreter
	CacheRoot   string
	Resolver    URLResolver
	NoNetwork   bool
	Stderr      io.Writer
}

var (
	downloadFunc     = fetch.Download
	runInstallerFunc = installer.Run
)

// CacheState reports whether the cache root holds a pip package tree.
func CacheState(cacheRoot string) State {
	info, err := os.Stat(filepath.Join(cacheRoot, "pip"))
	if err == nil && info.IsDir() {
		return StateWarm
	}
	return StateCold
}

// Ensure makes the cache warm. When it already is, Ensure returns
// immediately without touching the network or the filesystem. The cold
// path has no rollback: a failure part-way leaves the cache indeterminate,
// and a rebuild is the supported repair.
func Ensure(opts Options) error {
	if err := validate(opts); err != nil {
		return err
	}
	if CacheState(opts.CacheRoot) == StateWarm {
		return nil
	}
	return populate(opts)
}

// Rebuild deletes the cache root wholesale and runs the cold path. This is
// the only supported repair mechanism for a corrupted cache.
func Rebuild(opts Options) error {
	if err := validate(opts); err != nil {
		return err
	}
	if err := os.RemoveAll(opts.CacheRoot); err != nil {
		return fmt.Errorf(messages.BootstrapRemoveCacheRootFmt, opts.CacheRoot, err)
	}
	return populate(opts)
}

func validate(opts Options) error {
	if opts.CacheRoot == "" {
		return fmt.Errorf(messages.BootstrapCacheRootRequired)
	}
	if opts.Resolver == nil {
		return fmt.Errorf(messages.BootstrapResolverRequired)
	}
	return nil
}

// populate runs the cold path: create the cache root, resolve the
// installer URL, fetch it into scoped staging, install, prune.
func populate(opts Options) error {
	if opts.NoNetwork {
		return fmt.Errorf(messages.BootstrapNoNetworkFmt, opts.CacheRoot)
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	if err := os.MkdirAll(opts.CacheRoot, 0o755); err != nil {
		return fmt.Errorf(messages.BootstrapCreateCacheRootFmt, opts.CacheRoot, err)
	}

	url, err := opts.Resolver.InstallerURL(opts.Interpreter.Version)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stderr, messages.BootstrapInstallingFmt, opts.CacheRoot, url)

	script, cleanup, err := downloadFunc(url)
	if err != nil {
		return err
	}
	defer cleanup()

	return runInstallerFunc(opts.Interpreter.Path, script, opts.CacheRoot, stderr)
}
