// Command touchdebug-ebiten is touchdebug on the ebiten engine, with native
// touch input where the platform has it.
package main

import (
	"os"

	"touchdebug/internal/cli"
	"touchdebug/internal/ebitenhost"
)

func main() {
	cmd := cli.NewCommand("touchdebug-ebiten", "Visualise active touches with numbered markers (ebiten)", ebitenhost.Run)
	os.Exit(cli.Execute(cmd))
}
