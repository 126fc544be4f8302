package cmd

import (
	"fmt"

	"github.com/corey/distance/internal/domain/geometry"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:     "query [x] [y] [z]",
	Short:   "Ask a running server for a distance",
	Example: "  distance query 1 2 2\n  distance query --url http://localhost:8080 -3 4 0",
	RunE:    runQuery,

	DisableFlagParsing: true,
}

func init() {
	addURLFlag(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	parsed, err := splitCoordArgs(args, true)
	if err != nil {
		return err
	}
	if parsed.help {
		return cmd.Help()
	}

	base, err := targetURL()
	if err != nil {
		return err
	}
	raw := parsed.coords

	client := newClient(base)
	result, err := client.Distance(cmd.Context(), raw[0], raw[1], raw[2])
	if err != nil {
		return fmt.Errorf("query %s: %w", base, err)
	}

	// The server may accept text the local rules reject; echo it as typed then.
	labels := rawLabels(raw)
	if p, err := geometry.ParsePoint(raw[0], raw[1], raw[2]); err == nil {
		labels = pointLabels(p)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatDistance(labels, result.Distance, useColor()))
	return nil
}
