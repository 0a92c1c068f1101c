package analysis

import (
	"math"
	"sort"
	"strconv"

	"github.com/philipparndt/gopanel/pkg/geometry"
)

// Dim is a panel dimension in integer millimeters. Integer dimensions
// make grouping by equal size an exact comparison instead of a
// floating-point one.
type Dim int

// Cm returns the dimension in centimeters
func (d Dim) Cm() float64 {
	return float64(d) / 10
}

// String formats the dimension in centimeters with one decimal digit
func (d Dim) String() string {
	return strconv.FormatFloat(d.Cm(), 'f', 1, 64)
}

// Dimensions is a panel's bounding-box extents sorted ascending:
// height <= width <= length.
type Dimensions struct {
	Height, Width, Length Dim
}

// Properties describes a detected panel: the minimum corner of its
// bounding box and its sorted extents.
type Properties struct {
	Origin     geometry.Vector3
	Dimensions Dimensions
}

// PanelProperties computes the bounding box over a panel's points and
// derives its origin and dimension triple. The origin keeps the
// one-decimal precision of the parsed points.
func PanelProperties(panel Panel) Properties {
	bbox := geometry.NewBoundingBox()
	for _, side := range panel {
		for _, point := range side.Points {
			bbox.Extend(point)
		}
	}

	size := bbox.Size()
	extents := []float64{size.X, size.Y, size.Z}
	sort.Float64s(extents)

	return Properties{
		Origin: bbox.Min,
		Dimensions: Dimensions{
			Height: toDim(extents[0]),
			Width:  toDim(extents[1]),
			Length: toDim(extents[2]),
		},
	}
}

func toDim(cm float64) Dim {
	return Dim(math.Round(cm * 10))
}
