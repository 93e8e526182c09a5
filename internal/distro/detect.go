package distro

import (
	"fmt"
	"strings"

	"github.com/frostyard/archey-install/internal/log"
	"github.com/frostyard/archey-install/internal/runner"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

const (
	OSReleasePath   = "/etc/os-release"
	DeviceModelPath = "/proc/device-tree/model"

	undetermined = "Undetermined"
)

// Detector classifies the host. Every host interaction is a field so tests
// can substitute them.
type Detector struct {
	Fs     afero.Fs
	Runner runner.Runner
	// Uname returns the kernel name and machine architecture.
	Uname func() (sysname, machine string, err error)
	// Desktop returns the running desktop environment, e.g. "KDE", or "".
	Desktop func() string
	// PrettyName is consulted when os-release carries no PRETTY_NAME.
	PrettyName func() string
}

// NewDetector returns a Detector bound to the real host.
func NewDetector(r runner.Runner) *Detector {
	fs := afero.NewOsFs()
	return &Detector{
		Fs:         fs,
		Runner:     r,
		Uname:      Uname,
		Desktop:    func() string { return DetectDesktop(fs) },
		PrettyName: HostnamedPrettyName,
	}
}

// Uname reads the kernel name and machine from uname(2).
func Uname() (string, string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", "", err
	}
	return unix.ByteSliceToString(u.Sysname[:]), unix.ByteSliceToString(u.Machine[:]), nil
}

// Detect identifies the host. It only fails when the kernel cannot be
// queried; an unrecognised system is reported as Unknown, not as an error.
func (d *Detector) Detect() (Info, error) {
	sysname, machine, err := d.Uname()
	if err != nil {
		return Info{ID: undetermined}, fmt.Errorf("uname: %w", err)
	}
	info := Info{Kernel: sysname, Arch: machine}

	switch sysname {
	case "Darwin":
		info.ID = "MacOS"
		info.Distribution = MacOS
		info.PrettyName = d.macPrettyName()
	case "Linux", "FreeBSD":
		info.ID, info.PrettyName = d.release()
		info.Distribution = Parse(info.ID)
		d.refine(&info)
	default:
		info.ID = undetermined
		info.PrettyName = undetermined
	}

	if info.PrettyName == "" {
		info.PrettyName = undetermined
	}
	if machine != "" {
		info.PrettyName += " " + machine
	}

	log.Debug("detected host", "id", info.ID, "distribution", info.Distribution, "kernel", sysname)
	return info, nil
}

// release returns the distribution ID and pretty name from os-release,
// falling back to lsb_release.
func (d *Detector) release() (string, string) {
	env, err := d.readOSRelease()
	if err == nil {
		id := env["ID"]
		if id == "" {
			id = undetermined
		}
		pretty := env["PRETTY_NAME"]
		if pretty == "" && d.PrettyName != nil {
			pretty = d.PrettyName()
		}
		return id, pretty
	}
	log.Debug("os-release unavailable", "err", err)

	if _, err := d.Runner.LookPath("lsb_release"); err == nil {
		return d.firstLine("lsb_release", "-is"), strings.Trim(d.firstLine("lsb_release", "-ds"), `"`)
	}

	return undetermined, undetermined
}

func (d *Detector) readOSRelease() (map[string]string, error) {
	f, err := d.Fs.Open(OSReleasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", OSReleasePath, err)
	}
	return env, nil
}

// refine applies the groupings the release files do not express themselves.
func (d *Detector) refine(info *Info) {
	switch info.Distribution {
	case Ubuntu:
		if d.Desktop != nil && d.Desktop() == "KDE" {
			info.Distribution = Kubuntu
			info.ID = "Kubuntu"
			if strings.HasPrefix(info.PrettyName, "Ubuntu") {
				info.PrettyName = "Ku" + info.PrettyName[1:]
			}
		}
	case Debian:
		model, err := afero.ReadFile(d.Fs, DeviceModelPath)
		if err == nil && strings.Contains(string(model), "Raspberry Pi") {
			info.Distribution = Raspbian
			info.ID = "Raspbian"
			if strings.HasPrefix(info.PrettyName, "Debian") {
				info.PrettyName = "Rasp" + info.PrettyName[2:]
			}
		}
	}
}

func (d *Detector) macPrettyName() string {
	if v := d.firstLine("sw_vers", "-productVersion"); v != "" {
		return "macOS " + v
	}
	return "macOS"
}

func (d *Detector) firstLine(name string, args ...string) string {
	out, err := d.Runner.Run(name, args...)
	if err != nil {
		log.Debug("command failed", "cmd", name, "err", err)
		return ""
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}
