// Package distro identifies the host operating system and Linux distribution.
package distro

import "strings"

// Distribution is one of the operating systems the installer knows how to handle.
type Distribution int

const (
	Unknown Distribution = iota
	Arch
	BunsenLabs
	CrunchBang
	CentOS
	Debian
	Elementary
	Fedora
	FreeBSD
	Kubuntu
	Linuxmint
	MacOS
	Manjaro
	ManjaroARM
	Neon
	PopOS
	Raspbian
	Ubuntu
	Zorin
)

var names = map[Distribution]string{
	Unknown:    "Unknown",
	Arch:       "Arch",
	BunsenLabs: "BunsenLabs",
	CrunchBang: "CrunchBang",
	CentOS:     "CentOS",
	Debian:     "Debian",
	Elementary: "Elementary",
	Fedora:     "Fedora",
	FreeBSD:    "FreeBSD",
	Kubuntu:    "Kubuntu",
	Linuxmint:  "Linuxmint",
	MacOS:      "MacOS",
	Manjaro:    "Manjaro",
	ManjaroARM: "ManjaroARM",
	Neon:       "Neon",
	PopOS:      "PopOS",
	Raspbian:   "Raspbian",
	Ubuntu:     "Ubuntu",
	Zorin:      "Zorin",
}

// byID maps lower-cased os-release / lsb_release IDs to a Distribution.
var byID = map[string]Distribution{
	"arch":        Arch,
	"bunsenlabs":  BunsenLabs,
	"centos":      CentOS,
	"crunchbang":  CrunchBang,
	"debian":      Debian,
	"elementary":  Elementary,
	"fedora":      Fedora,
	"freebsd":     FreeBSD,
	"kubuntu":     Kubuntu,
	"linuxmint":   Linuxmint,
	"macos":       MacOS,
	"manjaro":     Manjaro,
	"manjaro-arm": ManjaroARM,
	"neon":        Neon,
	"pop":         PopOS,
	"raspbian":    Raspbian,
	"ubuntu":      Ubuntu,
	"zorin":       Zorin,
}

func (d Distribution) String() string {
	if n, ok := names[d]; ok {
		return n
	}
	return names[Unknown]
}

// All returns every supported distribution, excluding Unknown.
func All() []Distribution {
	all := make([]Distribution, 0, len(names)-1)
	for d := Arch; d <= Zorin; d++ {
		all = append(all, d)
	}
	return all
}

// Parse maps a release ID such as "ubuntu" or "Manjaro-ARM" to a Distribution.
// Matching is case-insensitive; unrecognised IDs yield Unknown.
func Parse(id string) Distribution {
	if d, ok := byID[strings.ToLower(strings.TrimSpace(id))]; ok {
		return d
	}
	return Unknown
}

// Info describes the detected host.
type Info struct {
	// ID is the raw identifier reported by the host (os-release ID, lsb_release -is, or "MacOS").
	ID           string
	Distribution Distribution
	PrettyName   string
	// Kernel is the uname system name, e.g. "Linux" or "Darwin".
	Kernel string
	// Arch is the uname machine, e.g. "x86_64".
	Arch string
}

// Supported reports whether the host was classified into a known distribution.
func (i Info) Supported() bool {
	return i.Distribution != Unknown
}
