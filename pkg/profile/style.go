package profile

import "fmt"

// Style is a placement hint passed through to the consumer; it is not
// interpreted by this package.
type Style int

const (
	// StyleRaised - the decoration stands on top of its base.
	StyleRaised Style = iota // raised
	// StyleEngraved - the decoration is sunk into its base.
	StyleEngraved // engraved
	// StyleCutout - the decoration is cut through its base.
	StyleCutout // cutout
)

func (s Style) String() string {
	switch s {
	case StyleEngraved:
		return "engraved"
	case StyleCutout:
		return "cutout"
	default:
		return "raised"
	}
}

// ParseStyle converts a style name into a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "raised":
		return StyleRaised, nil
	case "engraved":
		return StyleEngraved, nil
	case "cutout":
		return StyleCutout, nil
	}

	return StyleRaised, fmt.Errorf("unknown style %q", name)
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	style, err := ParseStyle(string(text))
	if err != nil {
		return err
	}

	*s = style

	return nil
}
