package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corey/distance/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Starts the server on $PORT (default 3000). --port and --host override the environment.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var (
	serveHost string
	servePort int
)

func addServeFlags(c *cobra.Command) {
	c.Flags().StringVar(&serveHost, "host", "", "bind host (default: all interfaces)")
	c.Flags().IntVarP(&servePort, "port", "p", 0, "bind port (default: $PORT or 3000)")
}

func init() {
	addServeFlags(serveCmd)
}

// resolveConfig merges the environment with any flags set on cmd.
func resolveConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		return app.Config{}, err
	}
	if f := cmd.Flags().Lookup("host"); f != nil && f.Changed {
		cfg.Host = serveHost
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = servePort
	}
	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	a, err := app.New(cfg, newLogger())
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	if err := a.Start(); err != nil {
		if isAddrInUse(err) {
			return fmt.Errorf("%w\n%s", err, diagnoseAddrInUse(cfg.Port))
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "⚡ distance API running at %s\n", a.URL())

	// Wait for shutdown signal or a dead server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case err := <-a.Err():
		a.Stop()
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\n⚡ shutting down...")
	return a.Stop()
}
