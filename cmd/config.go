package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/frostyard/archey-install/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage archey-install configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := resolveRoot()
		cfg, err := config.Load(root)
		if err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), root, cfg)
		return nil
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write archey-install.toml with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := resolveRoot()
		path := filepath.Join(root, config.FileName)

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check %s: %w", path, err)
		}

		if err := config.Default().Save(root); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func printConfig(w io.Writer, root string, cfg *config.Config) {
	binDir := cfg.BinDir
	if binDir == "" {
		binDir = "(platform default)"
	}
	fmt.Fprintf(w, "Config:            %s\n", filepath.Join(root, config.FileName))
	fmt.Fprintf(w, "Source:            %s\n", cfg.SourcePath(root))
	fmt.Fprintf(w, "Name:              %s\n", cfg.Name)
	fmt.Fprintf(w, "Bin dir:           %s\n", binDir)
	fmt.Fprintf(w, "Skip dependencies: %t\n", cfg.SkipDependencies)
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
