package prereq

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/frostyard/archey-install/internal/log"
	"github.com/frostyard/archey-install/internal/runner"
)

// Checker queries whether requirements are installed.
type Checker interface {
	// Available returns an error when the query tool itself is missing.
	Available() error
	// Installed reports whether name is installed. The query tool's
	// "not installed" exit status is not an error; any other failure is.
	Installed(name string) (bool, error)
}

// queryFailed classifies a failed query. It returns nil when err is the
// tool exiting with one of the notFound statuses, or with any status when
// notFound is empty.
func queryFailed(tool, name string, err error, notFound ...int) error {
	code, exited := runner.ExitCode(err)
	if !exited {
		return fmt.Errorf("%s %s: %w", tool, name, err)
	}
	if len(notFound) == 0 {
		return nil
	}
	for _, c := range notFound {
		if code == c {
			return nil
		}
	}
	return fmt.Errorf("%s %s: %w", tool, name, err)
}

// dpkgChecker queries dpkg on Debian-family hosts.
type dpkgChecker struct {
	r runner.Runner
}

func (c *dpkgChecker) Available() error {
	if _, err := c.r.LookPath("dpkg-query"); err != nil {
		return fmt.Errorf("dpkg-query not found: %w", err)
	}
	return nil
}

func (c *dpkgChecker) Installed(name string) (bool, error) {
	out, err := c.r.Run("dpkg-query", "-W", "-f=${Status}", name)
	if err != nil {
		return false, queryFailed("dpkg-query", name, err, 1)
	}
	// removed packages keep a "deinstall ok config-files" record
	return strings.Contains(string(out), "install ok installed"), nil
}

// pacmanChecker queries pacman on Arch-family hosts.
type pacmanChecker struct {
	r runner.Runner
}

func (c *pacmanChecker) Available() error {
	if _, err := c.r.LookPath("pacman"); err != nil {
		return fmt.Errorf("pacman not found: %w", err)
	}
	return nil
}

func (c *pacmanChecker) Installed(name string) (bool, error) {
	if _, err := c.r.Run("pacman", "-Q", name); err != nil {
		return false, queryFailed("pacman -Q", name, err, 1)
	}
	return true, nil
}

// pipChecker queries pip for Python modules.
type pipChecker struct {
	r runner.Runner
	// hint is the command that installs pip itself.
	hint string
	pip  string
}

func (c *pipChecker) Available() error {
	for _, name := range []string{"pip3", "pip"} {
		if _, err := c.r.LookPath(name); err == nil {
			c.pip = name
			return nil
		}
	}
	return fmt.Errorf("pip3 not found, install it with: %s", c.hint)
}

func (c *pipChecker) Installed(name string) (bool, error) {
	if _, err := c.r.Run(c.pip, "show", name); err != nil {
		return false, queryFailed(c.pip+" show", name, err)
	}
	return true, nil
}

var errNoRpmDB = errors.New("no rpm database found")

// rpmChecker reads the rpm database directly and falls back to `rpm -q`
// when no database file can be read.
type rpmChecker struct {
	r       runner.Runner
	dbPaths []string
	exists  func(path string) bool
	list    func(path string) ([]string, error)

	installed map[string]bool
}

func newRpmChecker(r runner.Runner) *rpmChecker {
	return &rpmChecker{
		r:       r,
		dbPaths: RpmDbPaths,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
		list: listRpmPackages,
	}
}

func (c *rpmChecker) Available() error {
	err := c.load()
	if err == nil {
		return nil
	}
	log.Debug("rpm database not used", "err", err)

	if _, err := c.r.LookPath("rpm"); err != nil {
		return fmt.Errorf("rpm not found: %w", err)
	}
	return nil
}

func (c *rpmChecker) Installed(name string) (bool, error) {
	if c.installed != nil {
		return c.installed[name], nil
	}
	if _, err := c.r.Run("rpm", "-q", name); err != nil {
		return false, queryFailed("rpm -q", name, err, 1)
	}
	return true, nil
}

func (c *rpmChecker) load() error {
	for _, path := range c.dbPaths {
		if !c.exists(path) {
			continue
		}
		names, err := c.list(path)
		if err != nil {
			return fmt.Errorf("read rpm database %s: %w", path, err)
		}
		c.installed = make(map[string]bool, len(names))
		for _, n := range names {
			c.installed[n] = true
		}
		log.Debugf("loaded %d packages from %s", len(names), path)
		return nil
	}
	return errNoRpmDB
}
