// distance serves the Euclidean distance of a 3D point from the origin
// over HTTP, with a small calculator page for humans.
package main

import (
	"os"

	"github.com/corey/distance/cmd/distance/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
