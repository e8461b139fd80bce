package profile

import (
	"sort"

	"github.com/gucio321/embossy/pkg/geom"
)

// ResolveNesting assigns every polygon a containment depth and a fill/hole
// role. Polygons are ordered by bounding-box area (largest first, original
// order on ties); each one's parent is the smallest already-placed polygon
// whose bounding box fully contains its own. Even levels are fills, odd
// levels are holes.
//
// Containment is bounding-box based, not true point-in-polygon winding. That
// is correct for the simple concentric outlines this pipeline targets
// (letters, icons, plate cutouts) and deliberately stays that way: switching
// to winding-number fill would change visual output for existing content.
func ResolveNesting(polygons []Polygon) []Profile {
	type entry struct {
		polygon Polygon
		box     geom.Rect[geom.ModelPos]
		level   int
	}

	entries := make([]entry, len(polygons))
	for i, p := range polygons {
		entries[i] = entry{polygon: p, box: geom.BoundingBox(p)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].box.Area() > entries[j].box.Area()
	})

	result := make([]Profile, len(entries))
	for i := range entries {
		// walk already-placed entries smallest-first, so the first container
		// found is the immediate parent
		for j := i - 1; j >= 0; j-- {
			if entries[j].box.Contains(entries[i].box) {
				entries[i].level = entries[j].level + 1
				break
			}
		}

		role := RoleFill
		if entries[i].level%2 == 1 {
			role = RoleHole
		}

		result[i] = Profile{
			Points: entries[i].polygon,
			Level:  entries[i].level,
			Role:   role,
		}
	}

	return result
}
