package prereq

import (
	"github.com/charmbracelet/log"
	"github.com/frostyard/archey-install/internal/pkgmgr"
	"github.com/frostyard/archey-install/internal/runner"
)

// Verifier checks requirements for one package manager. It only reports:
// nothing is installed and no outcome is fatal.
type Verifier struct {
	Manager  pkgmgr.Manager
	Checkers map[Kind]Checker
	Log      *log.Logger
}

// NewVerifier returns a Verifier with the checkers for m's family.
func NewVerifier(m pkgmgr.Manager, r runner.Runner, logger *log.Logger) *Verifier {
	v := &Verifier{Manager: m, Log: logger}
	switch m {
	case pkgmgr.APT:
		v.Checkers = map[Kind]Checker{OSPackage: &dpkgChecker{r: r}}
	case pkgmgr.DNF, pkgmgr.Yum:
		v.Checkers = map[Kind]Checker{
			OSPackage:    newRpmChecker(r),
			PythonModule: &pipChecker{r: r, hint: m.InstallCommand("python3-pip")},
		}
	case pkgmgr.Pacman:
		v.Checkers = map[Kind]Checker{OSPackage: &pacmanChecker{r: r}}
	}
	return v
}

// Check verifies the requirement table of the verifier's manager.
func (v *Verifier) Check() Report {
	return v.Verify(Requirements(v.Manager))
}

// Verify queries each requirement exactly once, in order. Every missing
// requirement produces one warning carrying its install command.
func (v *Verifier) Verify(reqs []Requirement) Report {
	report := Report{Manager: v.Manager}

	if len(reqs) == 0 || len(v.Checkers) == 0 {
		report.Manual = true
		v.Log.Warnf("Dependencies cannot be checked automatically with %s; make sure %s are installed", v.Manager, manualCheckList)
		return report
	}

	availabilityChecked := make(map[Kind]bool)
	unavailable := make(map[Kind]error)

	for _, req := range reqs {
		c, ok := v.Checkers[req.Kind]
		if !ok {
			report.Results = append(report.Results, Result{Requirement: req, Status: Skipped})
			v.Log.Warnf("Cannot check %s %s; install it with: %s", req.Kind, req.Name, req.Hint)
			continue
		}

		if !availabilityChecked[req.Kind] {
			availabilityChecked[req.Kind] = true
			if err := c.Available(); err != nil {
				unavailable[req.Kind] = err
				v.Log.Warnf("Skipping %s checks: %v", req.Kind, err)
			}
		}
		if err := unavailable[req.Kind]; err != nil {
			report.Results = append(report.Results, Result{Requirement: req, Status: Skipped, Err: err})
			continue
		}

		installed, err := c.Installed(req.Name)
		switch {
		case err != nil:
			report.Results = append(report.Results, Result{Requirement: req, Status: Skipped, Err: err})
			v.Log.Warnf("Could not check %s: %v", req.Name, err)
		case installed:
			report.Results = append(report.Results, Result{Requirement: req, Status: Present})
			v.Log.Debug("dependency present", "name", req.Name)
		default:
			report.Results = append(report.Results, Result{Requirement: req, Status: Missing})
			v.Log.Warnf("%s is not installed; run: %s", req.Name, req.Hint)
		}
	}

	return report
}
