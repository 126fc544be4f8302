package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/corey/distance/internal/adapters/web"
	"github.com/corey/distance/internal/app"
	"github.com/spf13/cobra"
)

// serverURL is the --url flag shared by commands that talk to a running server.
var serverURL string

func addURLFlag(c *cobra.Command) {
	c.Flags().StringVar(&serverURL, "url", "", "server URL (default: http://localhost:$PORT)")
}

func localURL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}

// targetURL resolves the server to talk to: --url, else localhost on $PORT.
func targetURL() (string, error) {
	if serverURL != "" {
		return serverURL, nil
	}
	cfg, err := app.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		return "", err
	}
	return localURL(cfg.Port), nil
}

func newClient(baseURL string) *web.Client {
	return web.NewClient(baseURL)
}

func bgContext() context.Context {
	return context.Background()
}
