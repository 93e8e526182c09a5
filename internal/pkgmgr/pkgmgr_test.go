package pkgmgr

import (
	"testing"

	"github.com/frostyard/archey-install/internal/distro"
	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	want := map[distro.Distribution]Manager{
		distro.Arch:       Pacman,
		distro.BunsenLabs: APT,
		distro.CrunchBang: APT,
		distro.CentOS:     Yum,
		distro.Debian:     APT,
		distro.Elementary: APT,
		distro.Fedora:     DNF,
		distro.FreeBSD:    Unknown,
		distro.Kubuntu:    APT,
		distro.Linuxmint:  APT,
		distro.MacOS:      Brew,
		distro.Manjaro:    Pacman,
		distro.ManjaroARM: Pacman,
		distro.Neon:       APT,
		distro.PopOS:      APT,
		distro.Raspbian:   APT,
		distro.Ubuntu:     APT,
		distro.Zorin:      APT,
	}

	// every supported distribution must have a documented mapping
	for _, d := range distro.All() {
		assert.Contains(t, want, d, "no expected manager listed for %s", d)
	}

	for d, m := range want {
		t.Run(d.String(), func(t *testing.T) {
			assert.Equal(t, m, For(d))
		})
	}
}

func TestForOutsideEnumeration(t *testing.T) {
	for _, d := range []distro.Distribution{distro.Unknown, distro.Distribution(-1), distro.Distribution(99)} {
		assert.Equal(t, Unknown, For(d), "For(%d)", d)
	}
}

func TestString(t *testing.T) {
	tests := map[Manager]string{
		APT:         "apt",
		DNF:         "dnf",
		Pacman:      "pacman",
		Yum:         "yum",
		Brew:        "brew",
		Unknown:     "unknown",
		Manager(42): "unknown",
	}
	for m, want := range tests {
		assert.Equal(t, want, m.String(), "Manager(%d)", int(m))
	}
}

func TestInstallCommand(t *testing.T) {
	tests := []struct {
		m    Manager
		pkg  string
		want string
	}{
		{APT, "x11-utils", "sudo apt install x11-utils"},
		{DNF, "xprop", "sudo dnf install xprop"},
		{Pacman, "xorg-xrandr", "sudo pacman -S xorg-xrandr"},
		{Yum, "xorg-x11-utils", "sudo yum install xorg-x11-utils"},
		{Brew, "python", "brew install python"},
		{Unknown, "xprop", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.InstallCommand(tt.pkg), "%s.InstallCommand(%q)", tt.m, tt.pkg)
	}
}
