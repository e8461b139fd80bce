// Package presets ships ready-made import configurations for common
// decoration kinds.
package presets

import (
	_ "embed"
	"encoding/json"
)

//go:embed presets.json
var presets []byte

// Preset is a named import configuration.
type Preset struct {
	Name        string
	Description string

	// TargetSize is the model-unit length of the larger source dimension.
	TargetSize float64
	// Depth is the extrusion depth.
	Depth float64
	// Style is raised, engraved or cutout.
	Style string
}

func decodePresets() ([]Preset, error) {
	var result []Preset
	if err := json.Unmarshal(presets, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// List returns all embedded presets.
func List() ([]Preset, error) {
	return decodePresets()
}

// Get returns the preset with the given name, or nil if there is none.
func Get(name string) (*Preset, error) {
	all, err := decodePresets()
	if err != nil {
		return nil, err
	}

	for _, preset := range all {
		if preset.Name == name {
			return &preset, nil
		}
	}

	return nil, nil
}
