package glyphtrace

import "strconv"

// A pair of coordinates. Points coming from outline providers are
// expressed in font design units, while traced contours are expressed
// in units of the glyph's vertical advance.
type Point struct {
	X float64
	Y float64
}

// Creates a point from a pair of float64 coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Returns the result of adding the two points.
func (self Point) Add(other Point) Point {
	self.X += other.X
	self.Y += other.Y
	return self
}

// Returns the point with both coordinates multiplied by the given factor.
func (self Point) Scale(factor float64) Point {
	self.X *= factor
	self.Y *= factor
	return self
}

// Returns the point with both coordinates divided by the given value.
//
// Division is used instead of multiplying by the inverse so normalized
// coordinates match coord/divisor exactly.
func (self Point) Div(divisor float64) Point {
	self.X /= divisor
	self.Y /= divisor
	return self
}

// Returns the middle point between the two given points. The result
// doesn't depend on the argument order.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Returns a string representation of the point, like "(12.5, -3)".
func (self Point) String() string {
	return "(" + strconv.FormatFloat(self.X, 'g', -1, 64) + ", " +
		strconv.FormatFloat(self.Y, 'g', -1, 64) + ")"
}
