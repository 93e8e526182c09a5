package prereq

import (
	"github.com/frostyard/archey-install/internal/pkgmgr"
	"github.com/samber/lo"
)

// Kind says how a requirement is queried.
type Kind int

const (
	OSPackage Kind = iota
	PythonModule
)

func (k Kind) String() string {
	if k == PythonModule {
		return "python module"
	}
	return "package"
}

// Requirement is a runtime dependency of archey and the command that installs it.
type Requirement struct {
	Name string
	Kind Kind
	// Provides names the command or import the requirement supplies.
	Provides string
	Hint     string
}

// manualCheckList is printed when dependencies cannot be queried.
const manualCheckList = "python3 with psutil, pyparsing and python-dotenv, xprop and xrandr"

func osPackage(m pkgmgr.Manager, name, provides string) Requirement {
	return Requirement{Name: name, Kind: OSPackage, Provides: provides, Hint: m.InstallCommand(name)}
}

func pipModule(name string) Requirement {
	return Requirement{Name: name, Kind: PythonModule, Provides: name, Hint: "pip3 install " + name}
}

// Requirements returns the dependencies checked for m, in check order.
// Brew and Unknown have none; they get a manual-check notice instead.
func Requirements(m pkgmgr.Manager) []Requirement {
	switch m {
	case pkgmgr.APT:
		return []Requirement{
			osPackage(m, "python3-psutil", "psutil"),
			osPackage(m, "python3-pyparsing", "pyparsing"),
			osPackage(m, "python3-dotenv", "python-dotenv"),
			osPackage(m, "x11-utils", "xprop"),
			osPackage(m, "x11-xserver-utils", "xrandr"),
		}
	case pkgmgr.DNF:
		return []Requirement{
			pipModule("psutil"),
			pipModule("pyparsing"),
			pipModule("python-dotenv"),
			osPackage(m, "xprop", "xprop"),
			osPackage(m, "xrandr", "xrandr"),
		}
	case pkgmgr.Yum:
		return []Requirement{
			pipModule("psutil"),
			pipModule("pyparsing"),
			pipModule("python-dotenv"),
			osPackage(m, "xorg-x11-utils", "xprop"),
			osPackage(m, "xorg-x11-server-utils", "xrandr"),
		}
	case pkgmgr.Pacman:
		return []Requirement{
			osPackage(m, "python-psutil", "psutil"),
			osPackage(m, "python-pyparsing", "pyparsing"),
			osPackage(m, "python-dotenv", "python-dotenv"),
			osPackage(m, "xorg-xprop", "xprop"),
			osPackage(m, "xorg-xrandr", "xrandr"),
		}
	default:
		return nil
	}
}

// Status is the outcome of checking one requirement.
type Status int

const (
	Present Status = iota
	Missing
	Skipped
)

func (s Status) String() string {
	switch s {
	case Present:
		return "present"
	case Missing:
		return "missing"
	default:
		return "skipped"
	}
}

type Result struct {
	Requirement
	Status Status
	// Err is set when the requirement could not be queried.
	Err error
}

// Report collects the results of one verification run.
type Report struct {
	Manager pkgmgr.Manager
	Results []Result
	// Manual is true when no automatic checks were possible.
	Manual bool
}

// Missing returns the requirements found absent.
func (r Report) Missing() []Result {
	return lo.Filter(r.Results, func(res Result, _ int) bool {
		return res.Status == Missing
	})
}

// Count returns how many results have status s.
func (r Report) Count(s Status) int {
	return lo.CountBy(r.Results, func(res Result) bool {
		return res.Status == s
	})
}
