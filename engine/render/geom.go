package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrInvalidGeometry is returned when a primitive receives arguments that
// describe no drawable shape, such as a negative radius.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Rect builds a rectangle from its top-left corner and size.
func Rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// Clamp returns the value `f` clamped to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// checkShort panics when a coordinate does not fit the signed 16-bit range
// used by the shape rasterizers.
func checkShort(values ...int) {
	for _, v := range values {
		if v < math.MinInt16 || v > math.MaxInt16 {
			panic(fmt.Sprintf("render: coordinate %d outside the signed 16-bit range", v))
		}
	}
}

func checkShortPoints(points []image.Point) {
	for _, p := range points {
		checkShort(p.X, p.Y)
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, args...))
}
