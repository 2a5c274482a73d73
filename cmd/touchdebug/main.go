//go:build !android

// Command touchdebug shows every active touch as a marker with its id.
// The left mouse button stands in for a finger.
package main

import (
	"os"

	"touchdebug/internal/cli"
	"touchdebug/internal/desktop"
)

func main() {
	cmd := cli.NewCommand("touchdebug", "Visualise active touches with numbered markers", desktop.Run)
	os.Exit(cli.Execute(cmd))
}
