// neoncube - NxNxN Rubik's cube arcade for the terminal.
package main

import (
	"github.com/SeamusWaldron/neoncube/internal/cli"
)

func main() {
	cli.Execute()
}
