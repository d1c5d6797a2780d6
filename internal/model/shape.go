package model

import (
	"fmt"
	"strings"
)

// Shape is a body-shape label. The numeric value is the class index the
// trained model emits, so the order below must never change.
type Shape int

const (
	ShapeBanana Shape = iota
	ShapeHourglass
	ShapePear
	ShapeApple
	ShapeInvertedTriangle
	ShapeRectangle
)

var shapeNames = [...]string{
	ShapeBanana:           "Banana",
	ShapeHourglass:        "Hourglass",
	ShapePear:             "Pear",
	ShapeApple:            "Apple",
	ShapeInvertedTriangle: "Inverted Triangle",
	ShapeRectangle:        "Rectangle",
}

// ShapeCount is the number of classes the model may emit.
const ShapeCount = len(shapeNames)

func Shapes() []Shape {
	out := make([]Shape, ShapeCount)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

func ShapeNames() []string {
	return append([]string(nil), shapeNames[:]...)
}

// ShapeFromIndex maps a raw model output to a label.
func ShapeFromIndex(idx int64) (Shape, error) {
	if idx < 0 || idx >= int64(ShapeCount) {
		return 0, fmt.Errorf("%w: class index %d outside [0,%d)", ErrClassification, idx, ShapeCount)
	}
	return Shape(idx), nil
}

// ParseShape accepts a display name in any case; '-' and '_' count as spaces.
func ParseShape(name string) (Shape, error) {
	norm := strings.Join(strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(name)), " ")
	for i, n := range shapeNames {
		if strings.EqualFold(n, norm) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrShapeNotFound, name)
}

func (s Shape) Valid() bool { return s >= 0 && int(s) < ShapeCount }

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Slug is the URL form used by /fashion/{shape}.
func (s Shape) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.String()), " ", "-")
}
