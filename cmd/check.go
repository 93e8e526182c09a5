package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/aquasecurity/table"
	"github.com/charmbracelet/x/term"
	"github.com/frostyard/archey-install/internal/distro"
	"github.com/frostyard/archey-install/internal/installer"
	"github.com/frostyard/archey-install/internal/log"
	"github.com/frostyard/archey-install/internal/pkgmgr"
	"github.com/frostyard/archey-install/internal/prereq"
	"github.com/frostyard/archey-install/internal/runner"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check archey's runtime dependencies without installing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &runner.SystemRunner{}

		info, err := distro.NewDetector(r).Detect()
		if err != nil {
			return &installer.ExitError{Code: installer.ExitUnsupported, Err: fmt.Errorf("detect distribution: %w", err)}
		}
		if !info.Supported() {
			return &installer.ExitError{Code: installer.ExitUnsupported, Err: fmt.Errorf("unsupported distribution %q", info.ID)}
		}

		m := pkgmgr.For(info.Distribution)
		report := prereq.NewVerifier(m, r, log.Logger).Check()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Distribution:    %s\n", info.PrettyName)
		fmt.Fprintf(out, "Package manager: %s\n", m)
		renderReport(out, out == os.Stdout && term.IsTerminal(os.Stdout.Fd()), report)
		return nil
	},
}

// renderReport writes one table row per checked requirement followed by a
// summary line.
func renderReport(w io.Writer, styled bool, report prereq.Report) {
	if report.Manual {
		fmt.Fprintln(w, "No automatic checks available.")
		return
	}

	t := table.New(w)
	width := 160
	if styled {
		if tw, _, err := term.GetSize(os.Stdout.Fd()); err == nil && tw > 0 {
			width = tw
		}
		t.SetHeaderStyle(table.StyleBold)
		t.SetLineStyle(table.StyleDim)
	}
	t.SetAvailableWidth(width)
	t.SetHeaders("Requirement", "Provides", "Type", "Status", "Install with")
	for _, res := range report.Results {
		hint := ""
		if res.Status != prereq.Present {
			hint = res.Hint
		}
		t.AddRow(res.Name, res.Provides, res.Kind.String(), res.Status.String(), hint)
	}
	t.Render()

	fmt.Fprintf(w, "%d present, %d missing, %d skipped\n",
		report.Count(prereq.Present), report.Count(prereq.Missing), report.Count(prereq.Skipped))
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
