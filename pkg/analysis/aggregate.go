package analysis

import (
	"sort"

	"github.com/philipparndt/gopanel/pkg/geometry"
)

// PanelGroup collects the origins of all panels sharing a dimension
// triple.
type PanelGroup struct {
	Dimensions Dimensions
	Origins    []geometry.Vector3
}

// GroupPanels aggregates panels by identical dimensions. Panels are
// processed tallest and largest-area first; groups appear in the order
// their dimensions are first seen, and origins within a group keep the
// processed order (detection order for panels of equal size). Every
// input panel contributes exactly one origin; duplicates from
// overlapping detection are kept.
func GroupPanels(panels []Panel) []PanelGroup {
	props := make([]Properties, len(panels))
	for i, panel := range panels {
		props[i] = PanelProperties(panel)
	}

	sort.SliceStable(props, func(i, j int) bool {
		a, b := props[i].Dimensions, props[j].Dimensions
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		return a.Length*a.Width > b.Length*b.Width
	})

	var groups []PanelGroup
	index := make(map[Dimensions]int)

	for _, p := range props {
		if at, ok := index[p.Dimensions]; ok {
			groups[at].Origins = append(groups[at].Origins, p.Origin)
			continue
		}
		index[p.Dimensions] = len(groups)
		groups = append(groups, PanelGroup{
			Dimensions: p.Dimensions,
			Origins:    []geometry.Vector3{p.Origin},
		})
	}

	return groups
}
