package cmd

import (
	"fmt"
	"os"

	"github.com/corey/distance/internal/app"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the resolved bind address, URL and whether a server answers there. No server required.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := app.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		return err
	}
	url := localURL(cfg.Port)
	running := newClient(url).Ping(cmd.Context())

	fmt.Fprint(cmd.OutOrStdout(), formatConfig(cfg, url, running, useColor()))
	return nil
}
