package obj

import (
	"github.com/philipparndt/gopanel/pkg/geometry"
)

// Side represents one named surface group from an OBJ export: its
// points in centimeters and its faces as raw 1-based index lists.
type Side struct {
	Name   string
	Points []geometry.Vector3
	Faces  [][]int
}

// BoundingBox calculates the bounding box over all sides
func BoundingBox(sides []Side) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, side := range sides {
		for _, point := range side.Points {
			bbox.Extend(point)
		}
	}
	return bbox
}
