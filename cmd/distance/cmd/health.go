package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server status",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	addURLFlag(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	base, err := targetURL()
	if err != nil {
		return err
	}
	client := newClient(base)

	if !client.Ping(cmd.Context()) {
		fmt.Fprintf(cmd.OutOrStdout(), "⚡ no distance server at %s\n", base)
		return nil
	}

	health, err := client.Health(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatHealth(base, health, useColor()))
	return nil
}
