// Package curve implements the group law of a short Weierstrass curve
// y² = x³ + a·x + b over any field type satisfying [Field].
//
// A [Point] is either the identity (the point at infinity) or an affine
// point. Points are immutable values tied to the coefficients (a, b) of the
// curve they were built on; adding points from different curves panics with
// an [*Error] wrapping [ErrCurveMismatch].
//
// The arithmetic is not constant time.
package curve
