package distro

import (
	"os"
	"strings"

	"github.com/spf13/afero"
)

// desktopByEnv maps XDG_CURRENT_DESKTOP / DESKTOP_SESSION values to a desktop name.
var desktopByEnv = map[string]string{
	"X-Cinnamon":    "Cinnamon",
	"GNOME":         "GNOME",
	"pop:GNOME":     "GNOME",
	"ubuntu:GNOME":  "GNOME",
	"KDE":           "KDE",
	"plasma":        "KDE",
	"plasmawayland": "KDE",
	"LXDE":          "LXDE",
	"MATE":          "MATE",
	"Pantheon":      "Pantheon",
	"unity":         "Unity",
	"Unity":         "Unity",
	"XFCE":          "Xfce",
}

// desktopByProcess maps session process names to a desktop name.
var desktopByProcess = map[string]string{
	"cinnamon":        "Cinnamon",
	"dde-dock":        "Deepin",
	"fur-box-session": "Fur Box",
	"gnome-session":   "GNOME",
	"gnome-shell":     "GNOME",
	"ksmserver":       "KDE",
	"plasmashell":     "KDE",
	"lxqt-session":    "LXQt",
	"lxsession":       "LXDE",
	"mate-session":    "MATE",
	"xfce4-session":   "Xfce",
}

// DetectDesktop returns the running desktop environment or "" when none is found.
// The environment is checked first; sudo usually strips it, so running
// processes under /proc are scanned as a fallback.
func DetectDesktop(fs afero.Fs) string {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if de := desktopFromEnv(os.Getenv(key)); de != "" {
			return de
		}
	}

	matches, _ := afero.Glob(fs, "/proc/[0-9]*/comm")
	for _, m := range matches {
		data, err := afero.ReadFile(fs, m)
		if err != nil {
			continue
		}
		if de, ok := desktopByProcess[strings.TrimSpace(string(data))]; ok {
			return de
		}
	}
	return ""
}

func desktopFromEnv(value string) string {
	if value == "" {
		return ""
	}
	if de, ok := desktopByEnv[value]; ok {
		return de
	}
	// XDG_CURRENT_DESKTOP may be a colon-separated list
	for _, part := range strings.Split(value, ":") {
		if de, ok := desktopByEnv[part]; ok {
			return de
		}
	}
	return ""
}
