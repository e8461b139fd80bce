package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/embossy/pkg/geom"
)

func square(x0, y0, x1, y1 geom.ModelPos) Polygon {
	return Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestResolveNestingParity(t *testing.T) {
	profiles := ResolveNesting([]Polygon{
		square(25, 25, 75, 75),
		square(0, 0, 100, 100),
	})
	require.Len(t, profiles, 2)

	// largest first
	assert.Equal(t, 0, profiles[0].Level)
	assert.Equal(t, RoleFill, profiles[0].Role)
	assert.Equal(t, 1, profiles[1].Level)
	assert.Equal(t, RoleHole, profiles[1].Role)
}

func TestResolveNestingThreeDeep(t *testing.T) {
	profiles := ResolveNesting([]Polygon{
		square(0, 0, 100, 100),
		square(25, 25, 75, 75),
		square(40, 40, 60, 60),
	})
	require.Len(t, profiles, 3)

	assert.Equal(t, []int{0, 1, 2}, []int{profiles[0].Level, profiles[1].Level, profiles[2].Level})
	assert.Equal(t, []Role{RoleFill, RoleHole, RoleFill}, []Role{profiles[0].Role, profiles[1].Role, profiles[2].Role})
}

func TestResolveNestingSiblings(t *testing.T) {
	// two disjoint outlines are both top-level fills
	profiles := ResolveNesting([]Polygon{
		square(0, 0, 40, 40),
		square(60, 0, 100, 40),
	})
	require.Len(t, profiles, 2)

	for _, p := range profiles {
		assert.Equal(t, 0, p.Level)
		assert.Equal(t, RoleFill, p.Role)
	}
}

func TestResolveNestingImmediateParent(t *testing.T) {
	// the small square is inside both rings; its parent must be the inner
	// (smaller) one, giving level 2, not 1
	profiles := ResolveNesting([]Polygon{
		square(0, 0, 100, 100),
		square(10, 10, 90, 90),
		square(40, 40, 50, 50),
	})
	require.Len(t, profiles, 3)

	assert.Equal(t, 2, profiles[2].Level)
	assert.Equal(t, RoleFill, profiles[2].Role)
}

func TestResolveNestingSiblingHoles(t *testing.T) {
	// two separate holes inside one fill: both level 1
	profiles := ResolveNesting([]Polygon{
		square(0, 0, 100, 100),
		square(10, 10, 40, 40),
		square(60, 60, 90, 90),
	})
	require.Len(t, profiles, 3)

	assert.Equal(t, 1, profiles[1].Level)
	assert.Equal(t, 1, profiles[2].Level)
	assert.Equal(t, RoleHole, profiles[1].Role)
	assert.Equal(t, RoleHole, profiles[2].Role)
}

func TestResolveNestingEmpty(t *testing.T) {
	assert.Empty(t, ResolveNesting(nil))
}
