package curve

import (
	"fmt"
	"math/big"
)

// Field is the set of operations the group law needs from a coordinate
// type. Every method returns a new value and leaves the receiver unchanged.
type Field[T any] interface {
	Add(T) T
	Sub(T) T
	Neg() T
	Mul(T) T
	Div(T) T
	Equal(T) bool
}

// Kind distinguishes the two variants of a Point.
type Kind uint8

const (
	KindIdentity Kind = iota // point at infinity
	KindAffine               // (x, y) coordinate pair
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindAffine:
		return "affine"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Point is an element of the group of points of the curve (a, b).
// x and y are only meaningful when kind is KindAffine.
type Point[T Field[T]] struct {
	kind Kind
	x, y T
	a, b T
}

// Identity returns the point at infinity of the curve (a, b).
func Identity[T Field[T]](a, b T) Point[T] {
	return Point[T]{kind: KindIdentity, a: a, b: b}
}

// NewPoint returns the affine point (x, y) of the curve (a, b), or an error
// wrapping ErrPointNotOnCurve if y² != x³ + a·x + b.
func NewPoint[T Field[T]](x, y, a, b T) (Point[T], error) {
	if !onCurve(x, y, a, b) {
		return Point[T]{}, &Error{
			Op:     "new point",
			Detail: fmt.Sprintf("(%v, %v) with a=%v b=%v", x, y, a, b),
			Err:    ErrPointNotOnCurve,
		}
	}
	return Point[T]{kind: KindAffine, x: x, y: y, a: a, b: b}, nil
}

// MustNewPoint is like NewPoint but panics if (x, y) is not on the curve.
func MustNewPoint[T Field[T]](x, y, a, b T) Point[T] {
	p, err := NewPoint(x, y, a, b)
	if err != nil {
		panic(err)
	}
	return p
}

func onCurve[T Field[T]](x, y, a, b T) bool {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(a.Mul(x)).Add(b)
	return lhs.Equal(rhs)
}

// Kind reports which variant p is.
func (p Point[T]) Kind() Kind {
	return p.kind
}

// IsIdentity reports whether p is the point at infinity.
func (p Point[T]) IsIdentity() bool {
	return p.kind == KindIdentity
}

// Coordinates returns the affine coordinates of p. ok is false for the
// identity.
func (p Point[T]) Coordinates() (x, y T, ok bool) {
	if p.kind != KindAffine {
		return x, y, false
	}
	return p.x, p.y, true
}

// X returns the x coordinate. It panics if p is the identity.
func (p Point[T]) X() T {
	p.mustBeAffine("x")
	return p.x
}

// Y returns the y coordinate. It panics if p is the identity.
func (p Point[T]) Y() T {
	p.mustBeAffine("y")
	return p.y
}

// Coefficients returns the a and b of the curve p lies on.
func (p Point[T]) Coefficients() (a, b T) {
	return p.a, p.b
}

// Curve returns the curve p lies on.
func (p Point[T]) Curve() Curve[T] {
	return Curve[T]{A: p.a, B: p.b}
}

// Equal reports whether p and q are the same point of the same curve.
func (p Point[T]) Equal(q Point[T]) bool {
	if p.kind != q.kind || !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return false
	}
	if p.kind == KindIdentity {
		return true
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p Point[T]) String() string {
	if p.kind == KindIdentity {
		return "infinity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// Add returns p + q. It panics with ErrCurveMismatch if the points lie on
// different curves.
func (p Point[T]) Add(q Point[T]) Point[T] {
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		panic(&Error{
			Op:     "add",
			Detail: fmt.Sprintf("a=%v b=%v and a=%v b=%v", p.a, p.b, q.a, q.b),
			Err:    ErrCurveMismatch,
		})
	}

	if p.kind == KindIdentity {
		return q
	}
	if q.kind == KindIdentity {
		return p
	}

	// q = -p: the line through them is vertical. This also covers doubling
	// a point with y = 0, whose tangent is vertical.
	if p.x.Equal(q.x) && q.y.Equal(p.y.Neg()) {
		return Identity(p.a, p.b)
	}

	if !p.x.Equal(q.x) {
		s := q.y.Sub(p.y).Div(q.x.Sub(p.x))
		return p.third(s, q.x)
	}

	// Same x and q.y != -p.y. Both points satisfy the curve equation, so
	// q.y = p.y and this is doubling.
	x2 := p.x.Mul(p.x)
	s := x2.Add(x2).Add(x2).Add(p.a).Div(p.y.Add(p.y))
	return p.third(s, p.x)
}

// third returns the reflection of the third intersection of the curve with
// the line of slope s through p and the point with x coordinate qx.
func (p Point[T]) third(s, qx T) Point[T] {
	x := s.Mul(s).Sub(p.x).Sub(qx)
	y := s.Mul(p.x.Sub(x)).Sub(p.y)
	return Point[T]{kind: KindAffine, x: x, y: y, a: p.a, b: p.b}
}

// Double returns p + p.
func (p Point[T]) Double() Point[T] {
	return p.Add(p)
}

// Neg returns -p, the reflection of p through the x axis.
func (p Point[T]) Neg() Point[T] {
	if p.kind == KindIdentity {
		return p
	}
	return Point[T]{kind: KindAffine, x: p.x, y: p.y.Neg(), a: p.a, b: p.b}
}

// Sub returns p - q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return p.Add(q.Neg())
}

// ScalarMul returns k·p using double-and-add, in O(log k) group
// operations. A negative k multiplies -p by |k|. A nil k panics with
// ErrNilScalar.
func (p Point[T]) ScalarMul(k *big.Int) Point[T] {
	if k == nil {
		panic(&Error{Op: "scalar mul", Detail: "k is nil", Err: ErrNilScalar})
	}
	if k.Sign() < 0 {
		return p.Neg().ScalarMul(new(big.Int).Neg(k))
	}

	result := Identity(p.a, p.b)
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}

// ScalarMulUint64 returns k·p for a machine-word scalar.
func (p Point[T]) ScalarMulUint64(k uint64) Point[T] {
	return p.ScalarMul(new(big.Int).SetUint64(k))
}

// ScalarMulNaive returns k·p by adding p to itself k times. It takes O(k)
// group operations and is only useful for small scalars and for checking
// ScalarMul.
func (p Point[T]) ScalarMulNaive(k uint64) Point[T] {
	result := Identity(p.a, p.b)
	for ; k > 0; k-- {
		result = p.Add(result)
	}
	return result
}

func (p Point[T]) mustBeAffine(op string) {
	if p.kind != KindAffine {
		panic(&Error{Op: op, Detail: "the identity has no coordinates", Err: ErrPointNotOnCurve})
	}
}
