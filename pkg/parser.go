package embossy

import (
	"encoding/xml"
	"fmt"
)

// Parse reads an SVG document and returns an Embossy ready for option
// chaining. Only the element tree is touched here; path data is interpreted
// lazily by Profiles.
func Parse(data []byte) (*Embossy, error) {
	// 0.0: initialize
	result := newEmbossy()

	// 1.0: unmarshal xml
	if err := xml.Unmarshal(data, &result.doc); err != nil {
		return nil, fmt.Errorf("cannot parse svg document: %w", err)
	}

	// N.N: return
	return result, nil
}
