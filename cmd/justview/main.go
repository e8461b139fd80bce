package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/embossy/pkg/profile"
	"github.com/gucio321/embossy/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file (profiles JSON emitted by embossy -o)")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// parse file
	set, err := profile.Load(data)
	if err != nil {
		glg.Fatal(err)
	}

	ebiten.SetWindowSize(800, 600)
	if err := ebiten.RunGame(viewer.NewViewer(set)); err != nil {
		glg.Fatal(err)
	}
}
