//go:build ebiten

// Command switchview renders a switch-toggle run as a time-space
// diagram: the initial state on top, one row per applied command below.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"bojlab/internal/app"
	"bojlab/internal/switches"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	input := flag.String("input", "", "problem input file (default stdin)")
	scale := flag.Int("scale", 8, "pixel scale multiplier")
	sps := flag.Int("sps", 4, "commands applied per second")
	flag.Parse()

	src := os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		src = f
	}

	in, err := switches.ReadInput(src)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}

	game := app.New(in, *scale, *sps)

	ebiten.SetWindowTitle("switchview")
	ebiten.SetWindowSize(in.Row.Len()**scale, (len(in.Commands)+1)**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
