package curve

import "fmt"

// Curve holds the coefficients of y² = x³ + A·x + B. It is a convenience
// for building many points on one curve.
type Curve[T Field[T]] struct {
	A, B T
}

// New returns the curve with coefficients a and b.
func New[T Field[T]](a, b T) Curve[T] {
	return Curve[T]{A: a, B: b}
}

// Identity returns the point at infinity of c.
func (c Curve[T]) Identity() Point[T] {
	return Identity(c.A, c.B)
}

// NewPoint returns (x, y) as a point of c.
func (c Curve[T]) NewPoint(x, y T) (Point[T], error) {
	return NewPoint(x, y, c.A, c.B)
}

// MustNewPoint is like NewPoint but panics if (x, y) is not on c.
func (c Curve[T]) MustNewPoint(x, y T) Point[T] {
	return MustNewPoint(x, y, c.A, c.B)
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c Curve[T]) Contains(x, y T) bool {
	return onCurve(x, y, c.A, c.B)
}

// Equal reports whether c and d have the same coefficients.
func (c Curve[T]) Equal(d Curve[T]) bool {
	return c.A.Equal(d.A) && c.B.Equal(d.B)
}

func (c Curve[T]) String() string {
	return fmt.Sprintf("y^2 = x^3 + %v*x + %v", c.A, c.B)
}
