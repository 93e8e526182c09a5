package installer

import (
	"github.com/charmbracelet/log"
	"github.com/frostyard/archey-install/internal/distro"
	"github.com/frostyard/archey-install/internal/pkgmgr"
	"github.com/frostyard/archey-install/internal/prereq"
	"github.com/frostyard/archey-install/internal/provision"
	"github.com/frostyard/archey-install/internal/runner"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// HostSystem implements System against the running host.
type HostSystem struct {
	Fs       afero.Fs
	Runner   runner.Runner
	Detector *distro.Detector
	Log      *log.Logger
	// Euid returns the effective user ID.
	Euid func() int
}

func NewHostSystem(r runner.Runner, logger *log.Logger) *HostSystem {
	return &HostSystem{
		Fs:       afero.NewOsFs(),
		Runner:   r,
		Detector: distro.NewDetector(r),
		Log:      logger,
		Euid:     unix.Geteuid,
	}
}

func (h *HostSystem) SourceExists(path string) bool {
	return provision.SourceExists(h.Fs, path)
}

func (h *HostSystem) CheckElevated() error {
	if h.Euid() != 0 {
		return ErrNotElevated
	}
	return nil
}

func (h *HostSystem) DetectDistribution() (distro.Info, error) {
	return h.Detector.Detect()
}

func (h *HostSystem) InstallFile(src, dir, name string) (string, error) {
	return provision.InstallFile(h.Fs, src, dir, name)
}

func (h *HostSystem) CheckPackages(m pkgmgr.Manager) prereq.Report {
	return prereq.NewVerifier(m, h.Runner, h.Log).Check()
}
