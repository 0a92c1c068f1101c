package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/gopanel/pkg/geometry"
)

// WriteReport renders the aggregated panel groups as text, one block
// per group in the aggregation order.
func WriteReport(w io.Writer, groups []PanelGroup) {
	for _, group := range groups {
		if len(group.Origins) == 1 {
			fmt.Fprintf(w, "  %d Panel:\n", len(group.Origins))
		} else {
			fmt.Fprintf(w, "  %d Panels:\n", len(group.Origins))
		}
		fmt.Fprintf(w, "  Length: %s\n", group.Dimensions.Length)
		fmt.Fprintf(w, "  Width: %s\n", group.Dimensions.Width)
		fmt.Fprintf(w, "  Height: %s\n", group.Dimensions.Height)
		if len(group.Origins) == 1 {
			fmt.Fprintf(w, "  Origin: %s\n", FormatVector(group.Origins[0]))
		} else {
			origins := make([]string, len(group.Origins))
			for i, origin := range group.Origins {
				origins[i] = FormatVector(origin)
			}
			fmt.Fprintf(w, "  Origins: %s\n", strings.Join(origins, ", "))
		}
		fmt.Fprintln(w)
	}
}

// FormatVector formats a point with one decimal digit per coordinate
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}
