package provision

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/frostyard/archey-install/internal/distro"
	"github.com/spf13/afero"
)

const (
	LinuxBinDir = "/usr/bin"
	MacOSBinDir = "/opt/local/bin"

	// ScriptMode lets group and others read and execute the installed script.
	ScriptMode os.FileMode = 0755
)

// BinDir returns the directory archey is installed into on d.
func BinDir(d distro.Distribution) string {
	if d == distro.MacOS {
		return MacOSBinDir
	}
	return LinuxBinDir
}

// InstallFile copies src to dir/name with ScriptMode and returns the
// destination path. The copy is written to a temporary file in dir and
// renamed into place, so an interrupted copy never leaves a truncated script.
func InstallFile(fs afero.Fs, src, dir, name string) (string, error) {
	in, err := fs.Open(src)
	if err != nil {
		return "", fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+name+"-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = fs.Remove(tmpName) }()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("copy %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}

	if err := fs.Chmod(tmpName, ScriptMode); err != nil {
		return "", fmt.Errorf("chmod: %w", err)
	}

	dest := filepath.Join(dir, name)
	if err := fs.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("install %s: %w", dest, err)
	}
	return dest, nil
}

// SourceExists reports whether path is a regular file.
func SourceExists(fs afero.Fs, path string) bool {
	fi, err := fs.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
