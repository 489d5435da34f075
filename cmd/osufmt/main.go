package main

import (
	"fmt"
	"os"

	"github.com/rony4d/go-osu-format/cmd/osufmt/launcher"
)

func main() {

	// Hand the full command line to the launcher and report any failure.
	err := launcher.Launch(os.Args)

	if err != nil {

		fmt.Fprintln(os.Stderr, "Error:", err)

		// Non-zero status so scripts can detect malformed input.
		os.Exit(1)
	}

}
