// Package pkgmgr maps a distribution to its native package manager.
package pkgmgr

import (
	"fmt"

	"github.com/frostyard/archey-install/internal/distro"
)

// Manager identifies a package manager family.
type Manager int

const (
	Unknown Manager = iota
	APT
	DNF
	Pacman
	Yum
	Brew
)

func (m Manager) String() string {
	switch m {
	case APT:
		return "apt"
	case DNF:
		return "dnf"
	case Pacman:
		return "pacman"
	case Yum:
		return "yum"
	case Brew:
		return "brew"
	default:
		return "unknown"
	}
}

// For returns the package manager of d. Distributions sharing a packaging
// ecosystem are grouped on purpose: Kubuntu, Neon and the other Ubuntu/Debian
// derivatives all resolve to APT.
func For(d distro.Distribution) Manager {
	switch d {
	case distro.Ubuntu, distro.Kubuntu, distro.Debian, distro.Raspbian, distro.CrunchBang,
		distro.BunsenLabs, distro.Linuxmint, distro.Zorin, distro.PopOS, distro.Elementary,
		distro.Neon:
		return APT
	case distro.Arch, distro.Manjaro, distro.ManjaroARM:
		return Pacman
	case distro.Fedora:
		return DNF
	case distro.CentOS:
		return Yum
	case distro.MacOS:
		return Brew
	case distro.FreeBSD, distro.Unknown:
		return Unknown
	default:
		return Unknown
	}
}

// InstallCommand returns the command a user runs to install pkg with m.
// It returns "" for Unknown.
func (m Manager) InstallCommand(pkg string) string {
	switch m {
	case APT:
		return fmt.Sprintf("sudo apt install %s", pkg)
	case DNF:
		return fmt.Sprintf("sudo dnf install %s", pkg)
	case Pacman:
		return fmt.Sprintf("sudo pacman -S %s", pkg)
	case Yum:
		return fmt.Sprintf("sudo yum install %s", pkg)
	case Brew:
		return fmt.Sprintf("brew install %s", pkg)
	default:
		return ""
	}
}
