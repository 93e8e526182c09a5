package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the optional config file looked up in the source root.
const FileName = "archey-install.toml"

type Config struct {
	// Source is the script to install, relative to the root unless absolute.
	Source string `toml:"source"`
	// Name is the file name written into the binary directory.
	Name string `toml:"name"`
	// BinDir overrides the platform binary directory when set.
	BinDir           string `toml:"bin_dir"`
	SkipDependencies bool   `toml:"skip_dependencies"`
}

func DefaultRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Source: "archey.py",
		Name:   "archey",
	}
}

func Load(root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
		// Keep defaults for keys set to empty strings
		if cfg.Source == "" {
			cfg.Source = "archey.py"
		}
		if cfg.Name == "" {
			cfg.Name = "archey"
		}
	}

	return cfg, nil
}

// SourcePath resolves Source against root.
func (c *Config) SourcePath(root string) string {
	if filepath.IsAbs(c.Source) {
		return c.Source
	}
	return filepath.Join(root, c.Source)
}

func (c *Config) Save(root string) error {
	path := filepath.Join(root, FileName)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
