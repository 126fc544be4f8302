package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the calculator page in a browser",
	Long:  "Opens the calculator page in your default browser. Requires the server to be running.",
	Args:  cobra.NoArgs,
	RunE:  runOpen,
}

func init() {
	addURLFlag(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	url, err := targetURL()
	if err != nil {
		return err
	}

	if !newClient(url).Ping(cmd.Context()) {
		return fmt.Errorf("server not running at %s. Start with: distance serve", url)
	}

	// Try to open in browser
	var openErr error
	switch runtime.GOOS {
	case "linux":
		openErr = exec.Command("xdg-open", url).Start()
	case "darwin":
		openErr = exec.Command("open", url).Start()
	default:
		openErr = fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}

	out := cmd.OutOrStdout()
	if openErr != nil {
		fmt.Fprintf(out, "⚡ calculator: %s\n", url)
		fmt.Fprintf(out, "  (could not open browser: %v)\n", openErr)
		return nil
	}

	fmt.Fprintf(out, "⚡ opening %s\n", url)
	return nil
}
