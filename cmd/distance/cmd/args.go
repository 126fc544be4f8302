package cmd

import (
	"fmt"
	"strings"
)

// coordFlags is what splitCoordArgs pulled out of the command line.
type coordFlags struct {
	coords [3]string
	help   bool
}

// splitCoordArgs separates coordinates from flags for calc and query.
// Those commands disable cobra's flag parsing because pflag reads "-3" as a
// shorthand flag. Anything starting with "-" followed by a digit or "." is a
// coordinate; withURL enables --url.
func splitCoordArgs(args []string, withURL bool) (coordFlags, error) {
	var out coordFlags
	var coords []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			coords = append(coords, args[i+1:]...)
			i = len(args)
		case a == "-h" || a == "--help":
			out.help = true
		case a == "-v" || a == "--verbose":
			verbose = true
		case withURL && a == "--url":
			if i+1 >= len(args) {
				return out, fmt.Errorf("flag needs an argument: --url")
			}
			i++
			serverURL = args[i]
		case withURL && strings.HasPrefix(a, "--url="):
			serverURL = strings.TrimPrefix(a, "--url=")
		case strings.HasPrefix(a, "-") && !isNegativeNumber(a):
			return out, fmt.Errorf("unknown flag: %s", a)
		default:
			coords = append(coords, a)
		}
	}

	if len(coords) > len(out.coords) {
		return out, fmt.Errorf("accepts at most %d arg(s), received %d", len(out.coords), len(coords))
	}
	copy(out.coords[:], coords)
	return out, nil
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	c := s[1]
	return c == '.' || (c >= '0' && c <= '9')
}
