package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	pkg "github.com/gucio321/embossy/pkg"
	"github.com/gucio321/embossy/pkg/presets"
	"github.com/gucio321/embossy/pkg/profile"
	"github.com/gucio321/embossy/pkg/viewer"
)

type Flags struct {
	InputFilePath  string
	OutputFilePath string
	Scale          float64
	TargetSize     float64
	Depth          float64
	Style          string
	View           bool
	Prep           bool
	presetName     string
	presetFile     string
	makePreset     bool
	showProfiles   bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "input file path")
	flag.StringVar(&f.OutputFilePath, "o", "", "output file path (profiles JSON)")
	flag.Float64Var(&f.Scale, "s", 1.0, "extra scale factor")
	flag.Float64Var(&f.TargetSize, "t", pkg.DefaultTargetSize, "target size of the larger dimension (mm)")
	flag.Float64Var(&f.Depth, "d", pkg.DefaultDepth, "extrusion depth (mm)")
	flag.StringVar(&f.Style, "style", "raised", "placement style: raised, engraved, cutout")
	flag.BoolVar(&f.View, "v", false, "view resulting profiles")
	flag.BoolVar(&f.Prep, "prep", false, "pre-process with inkscape (objects/text to paths)")
	flag.StringVar(&f.presetName, "preset", "", "built-in preset name (see pkg/presets)")
	flag.StringVar(&f.presetFile, "preset-file", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.BoolVar(&f.showProfiles, "show", false, "print resulting profiles JSON even if -o is set")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		glg.Info("Preset generated")
		return
	}

	if f.presetFile != "" {
		data, err := os.ReadFile(f.presetFile)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.presetFile, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.presetFile, err)
		}
	}

	if f.presetName != "" {
		preset, err := presets.Get(f.presetName)
		if err != nil {
			glg.Fatalf("Unable to load presets: %v", err)
		}

		if preset == nil {
			glg.Fatalf("Unknown preset %q", f.presetName)
		}

		f.TargetSize = preset.TargetSize
		f.Depth = preset.Depth
		f.Style = preset.Style
	}

	if _, err := os.Stat(f.InputFilePath); os.IsNotExist(err) {
		flag.Usage()
		os.Exit(1)
	}

	inputFile := f.InputFilePath
	if f.Prep {
		inputFile = preprocess(f.InputFilePath)
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		glg.Fatalf("Cannot read file %s: %v", inputFile, err)
	}

	result, err := pkg.Parse(data)
	if err != nil {
		glg.Fatalf("Cannot parse file %s: %v", inputFile, err)
	}

	style, err := profile.ParseStyle(f.Style)
	if err != nil {
		glg.Fatalf("Invalid style: %v", err)
	}

	set, err := result.
		Scale(f.Scale).
		TargetSize(f.TargetSize).
		Depth(f.Depth).
		Style(style).
		Profiles()
	switch {
	case errors.Is(err, pkg.ErrNoContent):
		glg.Warnf("Source %s has no drawable content", f.InputFilePath)
		return
	case err != nil:
		glg.Fatalf("Cannot build profiles: %v", err)
	}

	out, err := set.Save()
	if err != nil {
		glg.Fatalf("Cannot serialize profiles: %v", err)
	}

	if (f.OutputFilePath == "" && !f.View) || f.showProfiles {
		fmt.Println(string(out))
	}

	if f.OutputFilePath != "" {
		if err := os.WriteFile(f.OutputFilePath, out, 0644); err != nil {
			glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
		}
	}

	if f.View {
		ebiten.SetWindowSize(800, 600)
		if err := ebiten.RunGame(viewer.NewViewer(set)); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

// preprocess drives inkscape so text and stroked objects become plain path
// outlines, and returns the path of the converted file.
func preprocess(input string) string {
	inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := inkscapeProxy.Run(); err != nil {
		glg.Fatalf("Cannot run inkscape: %v", err)
	}

	defer inkscapeProxy.Close()

	glg.Info("running inkscape pre-processing")
	converted := input + ".embossy.svg"
	inkscapeProxy.RawCommands(
		fmt.Sprintf("file-open:%s", input),
		fmt.Sprintf("export-filename:%s", converted),
		"export-type:svg",
		"select-all",
		"object-to-path",
		"path-simplify",
		"export-do",
	)

	glg.Info("inkscape done.")

	return converted
}
