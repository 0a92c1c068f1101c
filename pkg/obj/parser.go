package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gopanel/pkg/geometry"
)

// CAD exports use inches; all downstream math is in centimeters.
const inchToCm = 2.54

// ParseFile reads an OBJ export file and returns its surface groups
func ParseFile(filename string) ([]Side, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads OBJ text and returns the surface groups in file order.
// Coordinates are converted to centimeters and rounded to one decimal
// place. An `o` line starts a group (any "obj" substring is stripped
// from the name), `v` appends a point, `f` appends a raw face index
// list, and all other lines are ignored. A `v` or `f` line before the
// first `o` line is a parse error.
func Parse(reader io.Reader) ([]Side, error) {
	scanner := bufio.NewScanner(reader)

	var sides []Side
	var current *Side
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "o":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: group marker without a name", lineNo)
			}
			if current != nil {
				sides = append(sides, *current)
			}
			current = &Side{Name: strings.ReplaceAll(fields[1], "obj", "")}

		case "v":
			if current == nil {
				return nil, fmt.Errorf("line %d: vertex outside of any group", lineNo)
			}
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: vertex needs exactly three coordinates", lineNo)
			}
			var coords [3]float64
			for i, field := range fields[1:4] {
				value, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNo, field, err)
				}
				coords[i] = value
			}
			point := geometry.NewVector3(coords[0], coords[1], coords[2]).Mul(inchToCm).Round()
			current.Points = append(current.Points, point)

		case "f":
			if current == nil {
				return nil, fmt.Errorf("line %d: face outside of any group", lineNo)
			}
			face := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				index, err := strconv.Atoi(field)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid face index %q: %w", lineNo, field, err)
				}
				face = append(face, index)
			}
			current.Faces = append(current.Faces, face)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}

	if current != nil {
		sides = append(sides, *current)
	}

	return sides, nil
}
