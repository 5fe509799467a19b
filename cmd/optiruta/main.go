// Command optiruta plans routes over a road map by distance or by number of
// stops, exports the map for viewing, and serves both over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
