package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *Set {
	return &Set{
		Profiles: []Profile{
			{Points: square(0, 0, 100, 100), Level: 0, Role: RoleFill},
			{Points: square(25, 25, 75, 75), Level: 1, Role: RoleHole},
		},
		Depth: 2,
		Style: StyleRaised,
	}
}

func TestSetSaveLoadRoundTrip(t *testing.T) {
	set := testSet()

	data, err := set.Save()
	require.NoError(t, err)

	loaded, err := Load(data)
	require.NoError(t, err)
	assert.Equal(t, set, loaded)
}

func TestSetJSONUsesRoleNames(t *testing.T) {
	data, err := testSet().Save()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"fill"`)
	assert.Contains(t, string(data), `"hole"`)
	assert.Contains(t, string(data), `"raised"`)
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load([]byte("not json"))
	require.Error(t, err)
}

func TestSetFillsAndHoles(t *testing.T) {
	set := testSet()

	require.Len(t, set.Fills(), 1)
	require.Len(t, set.Holes(), 1)
	assert.Equal(t, 0, set.Fills()[0].Level)
	assert.Equal(t, 1, set.Holes()[0].Level)
}

type recordingExtruder struct {
	ops []string
}

func (r *recordingExtruder) Union(_ Polygon, _ float64) error {
	r.ops = append(r.ops, "union")
	return nil
}

func (r *recordingExtruder) Subtract(_ Polygon, _ float64) error {
	r.ops = append(r.ops, "subtract")
	return nil
}

func TestComposeUnionsFillsBeforeSubtractingHoles(t *testing.T) {
	set := &Set{
		Profiles: []Profile{
			{Points: square(25, 25, 75, 75), Level: 1, Role: RoleHole},
			{Points: square(0, 0, 100, 100), Level: 0, Role: RoleFill},
			{Points: square(40, 40, 60, 60), Level: 2, Role: RoleFill},
		},
		Depth: 2,
	}

	ex := &recordingExtruder{}
	require.NoError(t, set.Compose(ex))

	assert.Equal(t, []string{"union", "union", "subtract"}, ex.ops)
}

func TestParseStyle(t *testing.T) {
	for name, want := range map[string]Style{
		"raised":   StyleRaised,
		"engraved": StyleEngraved,
		"cutout":   StyleCutout,
	} {
		got, err := ParseStyle(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseStyle("bevelled")
	require.Error(t, err)
}
