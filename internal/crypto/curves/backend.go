package curves

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/field"
)

// Backend is a prime field implementation that can carry the generic group
// law. T is the element type it produces.
type Backend[T curve.Field[T]] interface {
	// Name returns a short identifier for the field.
	Name() string

	// Modulus returns the field characteristic.
	Modulus() *big.Int

	// FromUint64 returns v reduced into the field.
	FromUint64(v uint64) T

	// FromBytes decodes a big-endian integer. It fails if the value is not
	// below the modulus.
	FromBytes(b []byte) (T, error)
}

// Random returns a uniformly random element of the field served by b.
func Random[T curve.Field[T]](b Backend[T]) (T, error) {
	k, err := RandomScalar(b.Modulus())
	if err != nil {
		var zero T
		return zero, err
	}
	return b.FromBytes(k.Bytes())
}

// RandomScalar returns a uniformly random integer in [0, n).
func RandomScalar(n *big.Int) (*big.Int, error) {
	k, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, errors.Wrap(err, "random scalar")
	}
	return k, nil
}

// Prime is the backend for the word-sized fields of package field.
type Prime struct {
	P uint64
}

func (b Prime) Name() string {
	return fmt.Sprintf("F_%d", b.P)
}

func (b Prime) Modulus() *big.Int {
	return new(big.Int).SetUint64(b.P)
}

func (b Prime) FromUint64(v uint64) field.Element {
	return field.MustNew(v%b.P, b.P)
}

func (b Prime) FromBytes(buf []byte) (field.Element, error) {
	v, err := canonical(buf, b.Modulus())
	if err != nil {
		return field.Element{}, err
	}
	return field.New(v.Uint64(), b.P)
}

// canonical parses buf as a big-endian integer and checks it is below
// modulus.
func canonical(buf []byte, modulus *big.Int) (*big.Int, error) {
	v := new(big.Int).SetBytes(buf)
	if v.Cmp(modulus) >= 0 {
		return nil, errors.Wrapf(field.ErrOutOfRange, "%x is not below the modulus", buf)
	}
	return v, nil
}

// divisionByZero is the panic value raised by backends whose underlying
// inversion silently maps zero to zero.
func divisionByZero(name string) error {
	return &field.Error{Op: "div", Detail: name, Err: field.ErrDivisionByZero}
}

// CurveThrough returns the coefficients of the unique curve
// y² = x³ + a·x + b passing through (x1, y1) and (x2, y2). The x coordinates
// must differ.
func CurveThrough[T curve.Field[T]](x1, y1, x2, y2 T) (a, b T) {
	cube := func(x T) T { return x.Mul(x).Mul(x) }
	a = y1.Mul(y1).Sub(y2.Mul(y2)).Sub(cube(x1).Sub(cube(x2))).Div(x1.Sub(x2))
	b = y1.Mul(y1).Sub(cube(x1)).Sub(a.Mul(x1))
	return a, b
}
