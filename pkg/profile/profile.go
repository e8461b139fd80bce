// Package profile turns raw source outlines into role-tagged flat polygons
// ready to be handed to a solid-modeling backend for extrusion.
package profile

import (
	"encoding/json"
	"fmt"

	"github.com/gucio321/embossy/pkg/geom"
)

// Role tells the solid-modeling backend whether a polygon adds or removes
// material.
type Role int

const (
	// RoleFill - even nesting level, composed by union.
	RoleFill Role = iota // fill
	// RoleHole - odd nesting level, composed by subtraction.
	RoleHole // hole
)

func (r Role) String() string {
	if r == RoleHole {
		return "hole"
	}

	return "fill"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "fill":
		*r = RoleFill
	case "hole":
		*r = RoleHole
	default:
		return fmt.Errorf("unknown role %q", text)
	}

	return nil
}

// Polygon is a closed outline in model coordinates. Closure is implied; the
// first point is not repeated at the end.
type Polygon []geom.Point[geom.ModelPos]

// Profile is one polygon with its computed nesting attributes.
type Profile struct {
	Points Polygon `json:"points"`
	Level  int     `json:"level"`
	Role   Role    `json:"role"`
}

// Set is the boundary payload toward the solid-modeling collaborator: the
// ordered profiles of one imported source plus the presentation parameters
// the collaborator needs.
type Set struct {
	Profiles []Profile `json:"profiles"`
	Depth    float64   `json:"depth"`
	Style    Style     `json:"style"`
}

// Fills returns the profiles composed by union.
func (s *Set) Fills() []Profile {
	return s.byRole(RoleFill)
}

// Holes returns the profiles composed by subtraction.
func (s *Set) Holes() []Profile {
	return s.byRole(RoleHole)
}

func (s *Set) byRole(role Role) []Profile {
	var result []Profile
	for _, p := range s.Profiles {
		if p.Role == role {
			result = append(result, p)
		}
	}

	return result
}

// Save serializes the set so it can be re-loaded later (see Load).
func (s *Set) Save() ([]byte, error) {
	return json.MarshalIndent(s, "", "\t")
}

// Load deserializes a set previously emitted by Save.
func Load(data []byte) (*Set, error) {
	var result Set
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("cannot decode profile set: %w", err)
	}

	return &result, nil
}
