// Package installer runs the archey installation: privilege check,
// distribution detection, file installation and dependency verification.
package installer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/frostyard/archey-install/internal/distro"
	"github.com/frostyard/archey-install/internal/pkgmgr"
	"github.com/frostyard/archey-install/internal/prereq"
	"github.com/frostyard/archey-install/internal/provision"
)

// Exit codes for fatal pre-conditions.
const (
	ExitFailure        = 1
	ExitMissingSupport = 2
	ExitNotElevated    = 3
	ExitUnsupported    = 4
)

var ErrNotElevated = errors.New("archey-install must be run as root (try sudo)")

// ExitError is a fatal error carrying the process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// System is the host surface the installer drives.
type System interface {
	SourceExists(path string) bool
	CheckElevated() error
	DetectDistribution() (distro.Info, error)
	InstallFile(src, dir, name string) (string, error)
	CheckPackages(m pkgmgr.Manager) prereq.Report
}

type Installer struct {
	System System
	// Source is the script to install.
	Source string
	// Name is the installed file name.
	Name string
	// BinDir overrides the platform binary directory when set.
	BinDir   string
	SkipDeps bool
	Out      io.Writer
}

// Result describes a completed installation.
type Result struct {
	Info    distro.Info
	Manager pkgmgr.Manager
	Dest    string
	Report  prereq.Report
}

// Run performs the installation. Fatal conditions are returned as *ExitError;
// missing dependencies are reported in Result.Report and never fail the run.
func (i *Installer) Run() (*Result, error) {
	out := i.Out
	if out == nil {
		out = os.Stdout
	}

	if !i.System.SourceExists(i.Source) {
		return nil, &ExitError{Code: ExitMissingSupport, Err: fmt.Errorf("required file %s not found", i.Source)}
	}

	if err := i.System.CheckElevated(); err != nil {
		return nil, &ExitError{Code: ExitNotElevated, Err: err}
	}

	info, err := i.System.DetectDistribution()
	if err != nil {
		return nil, &ExitError{Code: ExitUnsupported, Err: fmt.Errorf("detect distribution: %w", err)}
	}
	if !info.Supported() {
		return nil, &ExitError{Code: ExitUnsupported, Err: fmt.Errorf("unsupported distribution %q", info.ID)}
	}
	fmt.Fprintf(out, "Detected %s (%s)\n", info.Distribution, info.PrettyName)

	dir := i.BinDir
	if dir == "" {
		dir = provision.BinDir(info.Distribution)
	}
	fmt.Fprintf(out, "Installing %s to %s...\n", i.Name, dir)
	dest, err := i.System.InstallFile(i.Source, dir, i.Name)
	if err != nil {
		return nil, &ExitError{Code: ExitFailure, Err: fmt.Errorf("install failed: %w", err)}
	}

	res := &Result{Info: info, Manager: pkgmgr.For(info.Distribution), Dest: dest}

	if i.SkipDeps {
		fmt.Fprintln(out, "Skipping dependency checks.")
	} else {
		fmt.Fprintf(out, "Checking dependencies (%s)...\n", res.Manager)
		res.Report = i.System.CheckPackages(res.Manager)
	}

	fmt.Fprintf(out, "Installed %s\n", dest)
	return res, nil
}
