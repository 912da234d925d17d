package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/pkg/curve"
)

// ErrCrossCheck is returned when the generic group law disagrees with the
// native secp256k1 implementation.
var ErrCrossCheck = errors.New("curves: generic and native results differ")

// Secp256k1Element is an element of the secp256k1 base field. Values are
// kept normalized so that equality and negation need no magnitude tracking.
type Secp256k1Element struct {
	v secp256k1.FieldVal
}

func newSecp256k1Element(v *secp256k1.FieldVal) Secp256k1Element {
	var e Secp256k1Element
	e.v.Set(v).Normalize()
	return e
}

func (x Secp256k1Element) Add(y Secp256k1Element) Secp256k1Element {
	var r secp256k1.FieldVal
	return newSecp256k1Element(r.Add2(&x.v, &y.v))
}

func (x Secp256k1Element) Sub(y Secp256k1Element) Secp256k1Element {
	var neg, r secp256k1.FieldVal
	neg.NegateVal(&y.v, 1)
	return newSecp256k1Element(r.Add2(&x.v, &neg))
}

func (x Secp256k1Element) Neg() Secp256k1Element {
	var r secp256k1.FieldVal
	return newSecp256k1Element(r.NegateVal(&x.v, 1))
}

func (x Secp256k1Element) Mul(y Secp256k1Element) Secp256k1Element {
	var r secp256k1.FieldVal
	return newSecp256k1Element(r.Mul2(&x.v, &y.v))
}

func (x Secp256k1Element) Div(y Secp256k1Element) Secp256k1Element {
	if y.v.IsZero() {
		panic(divisionByZero("secp256k1"))
	}
	var r secp256k1.FieldVal
	r.Set(&y.v).Inverse().Mul(&x.v)
	return newSecp256k1Element(&r)
}

func (x Secp256k1Element) Equal(y Secp256k1Element) bool {
	return x.v.Equals(&y.v)
}

// BigInt returns x as an integer in [0, p).
func (x Secp256k1Element) BigInt() *big.Int {
	return new(big.Int).SetBytes(x.v.Bytes()[:])
}

func (x Secp256k1Element) String() string {
	return x.v.String()
}

// Secp256k1 is the backend for the secp256k1 base field.
type Secp256k1 struct{}

func (Secp256k1) Name() string {
	return "secp256k1"
}

func (Secp256k1) Modulus() *big.Int {
	return new(big.Int).Set(secp256k1.Params().P)
}

func (Secp256k1) FromUint64(v uint64) Secp256k1Element {
	var fv secp256k1.FieldVal
	fv.SetByteSlice(new(big.Int).SetUint64(v).Bytes())
	return newSecp256k1Element(&fv)
}

func (s Secp256k1) FromBytes(b []byte) (Secp256k1Element, error) {
	if _, err := canonical(b, s.Modulus()); err != nil {
		return Secp256k1Element{}, err
	}
	var fv secp256k1.FieldVal
	fv.SetByteSlice(b)
	return newSecp256k1Element(&fv), nil
}

func (s Secp256k1) fromBig(v *big.Int) Secp256k1Element {
	e, err := s.FromBytes(v.Bytes())
	if err != nil {
		panic(err)
	}
	return e
}

// Secp256k1Curve returns y² = x³ + 7 over the secp256k1 base field.
func Secp256k1Curve() curve.Curve[Secp256k1Element] {
	var s Secp256k1
	return curve.New(s.FromUint64(0), s.FromUint64(7))
}

// Secp256k1Generator returns the standard secp256k1 base point.
func Secp256k1Generator() curve.Point[Secp256k1Element] {
	var s Secp256k1
	params := secp256k1.Params()
	return Secp256k1Curve().MustNewPoint(s.fromBig(params.Gx), s.fromBig(params.Gy))
}

// Secp256k1Order returns the order of the secp256k1 base point.
func Secp256k1Order() *big.Int {
	return new(big.Int).Set(secp256k1.Params().N)
}

// CrossCheckSecp256k1 computes k·G with the generic group law and with
// the native secp256k1 implementation and reports ErrCrossCheck if they
// differ. k is reduced modulo the group order first.
func CrossCheckSecp256k1(k *big.Int) (curve.Point[Secp256k1Element], error) {
	n := Secp256k1Order()
	reduced := new(big.Int).Mod(k, n)

	generic := Secp256k1Generator().ScalarMul(reduced)

	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(reduced.Bytes())
	var native secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&scalar, &native)

	// The native identity is (0, 0) in affine form, which is not on the
	// curve. Jacobian Z = 0 also denotes it.
	if !native.Z.Normalize().IsZero() {
		native.ToAffine()
	}
	native.X.Normalize()
	native.Y.Normalize()
	if native.Z.IsZero() || (native.X.IsZero() && native.Y.IsZero()) {
		if !generic.IsIdentity() {
			return generic, errors.Wrapf(ErrCrossCheck, "k=%s: native result is the identity, generic is %v", k, generic)
		}
		return generic, nil
	}

	want := Secp256k1Curve().MustNewPoint(newSecp256k1Element(&native.X), newSecp256k1Element(&native.Y))
	if !want.Equal(generic) {
		return generic, errors.Wrapf(ErrCrossCheck, "k=%s: native %v, generic %v", k, want, generic)
	}
	return generic, nil
}

var _ Backend[Secp256k1Element] = Secp256k1{}
