package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/frostyard/archey-install/cmd"
	"github.com/frostyard/archey-install/internal/installer"
	"github.com/frostyard/archey-install/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := fang.Execute(ctx, cmd.RootCmd(),
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *installer.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
