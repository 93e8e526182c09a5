package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/frostyard/archey-install/internal/config"
	"github.com/frostyard/archey-install/internal/distro"
	"github.com/frostyard/archey-install/internal/pkgmgr"
	"github.com/frostyard/archey-install/internal/provision"
	"github.com/frostyard/archey-install/internal/runner"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected distribution and where archey would be installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(resolveRoot())
		if err != nil {
			return err
		}

		info, err := distro.NewDetector(&runner.SystemRunner{}).Detect()
		if err != nil {
			return err
		}

		printDetection(cmd.OutOrStdout(), info, cfg)
		return nil
	},
}

func printDetection(w io.Writer, info distro.Info, cfg *config.Config) {
	fmt.Fprintf(w, "ID:              %s\n", info.ID)
	fmt.Fprintf(w, "Distribution:    %s\n", info.Distribution)
	fmt.Fprintf(w, "Pretty name:     %s\n", info.PrettyName)
	fmt.Fprintf(w, "Kernel:          %s\n", info.Kernel)

	if !info.Supported() {
		fmt.Fprintln(w, "Status:          unsupported")
		return
	}

	dir := cfg.BinDir
	if dir == "" {
		dir = provision.BinDir(info.Distribution)
	}
	fmt.Fprintf(w, "Package manager: %s\n", pkgmgr.For(info.Distribution))
	fmt.Fprintf(w, "Destination:     %s\n", filepath.Join(dir, cfg.Name))
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
