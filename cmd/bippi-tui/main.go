// Command bippi-tui is the interactive terminal front end for bippi.
package main

import (
	"fmt"
	"os"

	"github.com/landonrogers/bippi/internal/tui"
)

func main() {
	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
