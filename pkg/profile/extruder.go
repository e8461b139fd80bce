package profile

import "fmt"

// Extruder is the solid-modeling collaborator: it extrudes each polygon to
// the given depth and composes the running result. Numerical robustness of
// the boolean operations is the implementation's own business.
type Extruder interface {
	// Union adds an extruded polygon to the result.
	Union(polygon Polygon, depth float64) error
	// Subtract removes an extruded polygon from the result.
	Subtract(polygon Polygon, depth float64) error
}

// Compose feeds the whole set to ex: every fill is unioned, then every hole
// is subtracted. Composition is commutative within a role, so relative order
// among same-role profiles does not matter.
func (s *Set) Compose(ex Extruder) error {
	for _, p := range s.Fills() {
		if err := ex.Union(p.Points, s.Depth); err != nil {
			return fmt.Errorf("cannot union fill: %w", err)
		}
	}

	for _, p := range s.Holes() {
		if err := ex.Subtract(p.Points, s.Depth); err != nil {
			return fmt.Errorf("cannot subtract hole: %w", err)
		}
	}

	return nil
}
