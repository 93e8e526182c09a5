package cmd

import (
	"github.com/frostyard/archey-install/internal/config"
	"github.com/frostyard/archey-install/internal/installer"
	"github.com/frostyard/archey-install/internal/log"
	"github.com/frostyard/archey-install/internal/runner"
	"github.com/spf13/cobra"
)

var (
	rootDir  string
	debug    bool
	binDir   string
	skipDeps bool
)

var rootCmd = &cobra.Command{
	Use:   "archey-install",
	Short: "Install archey and check its runtime dependencies",
	Long: `Install the archey script into the system binary directory and check
that the packages it needs at runtime are present.

Must be run as root. Missing dependencies are reported with the command
that installs them but never fail the installation.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetDebug(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		root := resolveRoot()
		cfg, err := config.Load(root)
		if err != nil {
			return &installer.ExitError{Code: installer.ExitFailure, Err: err}
		}
		if binDir != "" {
			cfg.BinDir = binDir
		}
		if skipDeps {
			cfg.SkipDependencies = true
		}

		inst := &installer.Installer{
			System:   installer.NewHostSystem(&runner.SystemRunner{}, log.Logger),
			Source:   cfg.SourcePath(root),
			Name:     cfg.Name,
			BinDir:   cfg.BinDir,
			SkipDeps: cfg.SkipDependencies,
			Out:      cmd.OutOrStdout(),
		}
		_, err = inst.Run()
		return err
	},
}

func RootCmd() *cobra.Command {
	return rootCmd
}

func resolveRoot() string {
	if rootDir == "" {
		return config.DefaultRoot()
	}
	return rootDir
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "directory holding archey.py and archey-install.toml (default current directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&binDir, "bin-dir", "", "install into this directory instead of the platform default")
	rootCmd.Flags().BoolVar(&skipDeps, "skip-deps", false, "skip the dependency checks")
}
