package obj

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gopanel/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupCount(t *testing.T) {
	input := `# exported from CAD
o side_1
v 0 0 0
f 1 2 3
o side_2
v 1 0 0
s off
o side_3
`
	sides, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, sides, 3)
	assert.Equal(t, "side_1", sides[0].Name)
	assert.Equal(t, "side_2", sides[1].Name)
	assert.Equal(t, "side_3", sides[2].Name)
}

func TestParseNameStripsObj(t *testing.T) {
	sides, err := Parse(strings.NewReader("o topobj\no objside\n"))
	require.NoError(t, err)
	require.Len(t, sides, 2)
	assert.Equal(t, "top", sides[0].Name)
	assert.Equal(t, "side", sides[1].Name)
}

func TestParseConvertsInchesToCentimeters(t *testing.T) {
	sides, err := Parse(strings.NewReader("o side\nv 1 2 3\n"))
	require.NoError(t, err)
	require.Len(t, sides[0].Points, 1)

	// 2.54, 5.08 and 7.62 rounded to one decimal place
	assert.Equal(t, geometry.NewVector3(2.5, 5.1, 7.6), sides[0].Points[0])
}

func TestParseNormalizesNegativeZero(t *testing.T) {
	sides, err := Parse(strings.NewReader("o side\nv -0 -0.001 0\n"))
	require.NoError(t, err)

	point := sides[0].Points[0]
	assert.Equal(t, geometry.NewVector3(0, 0, 0), point)
	assert.False(t, math.Signbit(point.X))
	assert.False(t, math.Signbit(point.Y))
}

func TestParseKeepsFaceIndicesRaw(t *testing.T) {
	sides, err := Parse(strings.NewReader("o side\nf 1 2 3\nf 1 3 4\n"))
	require.NoError(t, err)
	require.Len(t, sides[0].Faces, 2)
	assert.Equal(t, []int{1, 2, 3}, sides[0].Faces[0])
	assert.Equal(t, []int{1, 3, 4}, sides[0].Faces[1])
}

func TestParseFinalizesLastGroupAtEOF(t *testing.T) {
	sides, err := Parse(strings.NewReader("o first\no last\nv 0 0 0"))
	require.NoError(t, err)
	require.Len(t, sides, 2)
	assert.Len(t, sides[1].Points, 1)
}

func TestParseEmptyInput(t *testing.T) {
	sides, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sides)

	sides, err = Parse(strings.NewReader("# comment only\nvt 0 0\n"))
	require.NoError(t, err)
	assert.Empty(t, sides)
}

func TestParseVertexOutsideGroup(t *testing.T) {
	_, err := Parse(strings.NewReader("v 0 0 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseFaceOutsideGroup(t *testing.T) {
	_, err := Parse(strings.NewReader("\nf 1 2 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseGroupWithoutName(t *testing.T) {
	_, err := Parse(strings.NewReader("o\n"))
	require.Error(t, err)
}

func TestParseMalformedCoordinate(t *testing.T) {
	_, err := Parse(strings.NewReader("o side\nv 1 nope 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseWrongCoordinateCount(t *testing.T) {
	_, err := Parse(strings.NewReader("o side\nv 1 2\n"))
	require.Error(t, err)
}

func TestParseMalformedFaceIndex(t *testing.T) {
	_, err := Parse(strings.NewReader("o side\nf 1 2 x\n"))
	require.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.obj")
	require.NoError(t, os.WriteFile(path, []byte("o side\nv 0 0 0\n"), 0o644))

	sides, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, sides, 1)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.obj"))
	require.Error(t, err)
}
