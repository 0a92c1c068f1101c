package analysis

import (
	"strconv"
	"strings"

	"github.com/philipparndt/gopanel/pkg/geometry"
	"github.com/philipparndt/gopanel/pkg/obj"
)

const panelSides = 6

// Panel is a run of six consecutive sides whose union forms the
// topology of a rectangular box: 8 distinct corner points and 12
// distinct triangulated faces.
type Panel []obj.Side

// FindPanels tests every window of six consecutive sides and returns
// the windows that form a box, in order of increasing start index.
// Windows overlap: a side can appear in more than one returned panel.
func FindPanels(sides []obj.Side) []Panel {
	var panels []Panel
	for i := 0; i+panelSides <= len(sides); i++ {
		window := Panel(sides[i : i+panelSides])
		if isBox(window) {
			panels = append(panels, window)
		}
	}
	return panels
}

// FindPanelsExclusive is the non-overlapping variant of FindPanels:
// the six sides of each match are consumed, so no side belongs to
// more than one returned panel.
func FindPanelsExclusive(sides []obj.Side) []Panel {
	var panels []Panel
	for i := 0; i+panelSides <= len(sides); {
		window := Panel(sides[i : i+panelSides])
		if isBox(window) {
			panels = append(panels, window)
			i += panelSides
		} else {
			i++
		}
	}
	return panels
}

func isBox(window Panel) bool {
	points := make(map[geometry.Vector3]struct{})
	faces := make(map[string]struct{})

	for _, side := range window {
		if len(side.Points) != 4 || len(side.Faces) != 2 {
			return false
		}
		for _, point := range side.Points {
			points[point] = struct{}{}
		}
		for _, face := range side.Faces {
			faces[faceKey(face)] = struct{}{}
		}
	}

	return len(points) == 8 && len(faces) == 12
}

// faceKey builds a map key from a face's raw index list; faces are
// variable length, so they cannot be map keys directly.
func faceKey(face []int) string {
	var b strings.Builder
	for i, index := range face {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(index))
	}
	return b.String()
}
