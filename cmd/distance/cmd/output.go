package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corey/distance/internal/app"
	"github.com/corey/distance/internal/domain/geometry"
	"github.com/corey/distance/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

// paint wraps s in code when color is on.
func paint(s, code string, color bool) string {
	if !color {
		return s
	}
	return code + s + colorReset
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pointLabels renders a parsed point's coordinates.
func pointLabels(p geometry.Point) [3]string {
	return [3]string{formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z)}
}

// rawLabels renders coordinates as typed, with empty ones shown as 0.
func rawLabels(raw [3]string) [3]string {
	var out [3]string
	for i, s := range raw {
		out[i] = strings.TrimSpace(s)
		if out[i] == "" {
			out[i] = "0"
		}
	}
	return out
}

// formatDistance formats a result for terminal display.
//
//	⚡ distance = 5
//	  point (3, 4, 0)
func formatDistance(coords [3]string, d float64, color bool) string {
	var sb strings.Builder
	sb.WriteString(paint("⚡ distance = "+formatFloat(d), colorBold, color))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  point %s\n", paint(fmt.Sprintf("(%s, %s, %s)",
		coords[0], coords[1], coords[2]), colorCyan, color)))
	return sb.String()
}

// formatHealth formats a HealthResult for terminal display.
func formatHealth(url string, h *ports.HealthResult, color bool) string {
	var sb strings.Builder
	sb.WriteString(paint("⚡ distance server", colorBold, color) + "\n")
	sb.WriteString(fmt.Sprintf("  URL:     %s\n", url))
	sb.WriteString(fmt.Sprintf("  Status:  %s\n", paint(h.Status, colorGreen, color)))
	sb.WriteString(fmt.Sprintf("  Uptime:  %s\n", h.Uptime))
	return sb.String()
}

// formatConfig formats the resolved configuration for terminal display.
func formatConfig(cfg app.Config, url string, running, color bool) string {
	host := cfg.Host
	if host == "" {
		host = "(all interfaces)"
	}
	status := paint("✗ not running", colorYellow, color)
	if running {
		status = paint("✓ running", colorGreen, color)
	}

	var sb strings.Builder
	sb.WriteString(paint("⚡ distance config", colorBold, color) + "\n")
	sb.WriteString(fmt.Sprintf("  Host:    %s\n", host))
	sb.WriteString(fmt.Sprintf("  Port:    %d\n", cfg.Port))
	sb.WriteString(fmt.Sprintf("  URL:     %s\n", url))
	sb.WriteString(fmt.Sprintf("  Server:  %s\n", status))
	return sb.String()
}
