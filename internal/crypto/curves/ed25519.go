package curves

import (
	"encoding/hex"
	"math/big"

	"filippo.io/edwards25519/field"
)

// Ed25519Element is an element of GF(2^255 - 19).
type Ed25519Element struct {
	v field.Element
}

func (x Ed25519Element) Add(y Ed25519Element) Ed25519Element {
	var r Ed25519Element
	r.v.Add(&x.v, &y.v)
	return r
}

func (x Ed25519Element) Sub(y Ed25519Element) Ed25519Element {
	var r Ed25519Element
	r.v.Subtract(&x.v, &y.v)
	return r
}

func (x Ed25519Element) Neg() Ed25519Element {
	var r Ed25519Element
	r.v.Negate(&x.v)
	return r
}

func (x Ed25519Element) Mul(y Ed25519Element) Ed25519Element {
	var r Ed25519Element
	r.v.Multiply(&x.v, &y.v)
	return r
}

// Div returns x / y. field.Element.Invert maps zero to zero, so a zero
// divisor is rejected here.
func (x Ed25519Element) Div(y Ed25519Element) Ed25519Element {
	if y.isZero() {
		panic(divisionByZero("ed25519"))
	}
	var inv, r Ed25519Element
	inv.v.Invert(&y.v)
	r.v.Multiply(&x.v, &inv.v)
	return r
}

func (x Ed25519Element) Equal(y Ed25519Element) bool {
	return x.v.Equal(&y.v) == 1
}

func (x Ed25519Element) isZero() bool {
	var zero field.Element
	return x.v.Equal(zero.Zero()) == 1
}

// BigInt returns x as an integer in [0, p).
func (x Ed25519Element) BigInt() *big.Int {
	return new(big.Int).SetBytes(reverse(x.v.Bytes()))
}

func (x Ed25519Element) String() string {
	return hex.EncodeToString(reverse(x.v.Bytes()))
}

// Ed25519 is the backend for GF(2^255 - 19).
type Ed25519 struct{}

func (Ed25519) Name() string {
	return "ed25519"
}

func (Ed25519) Modulus() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	return p.Sub(p, big.NewInt(19))
}

func (e Ed25519) FromUint64(v uint64) Ed25519Element {
	x, err := e.FromBytes(new(big.Int).SetUint64(v).Bytes())
	if err != nil {
		panic(err)
	}
	return x
}

// FromBytes decodes a big-endian integer. field.Element itself uses the
// little-endian encoding of RFC 8032, so the bytes are reversed.
func (e Ed25519) FromBytes(b []byte) (Ed25519Element, error) {
	v, err := canonical(b, e.Modulus())
	if err != nil {
		return Ed25519Element{}, err
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	var r Ed25519Element
	if _, err := r.v.SetBytes(reverse(buf[:])); err != nil {
		return Ed25519Element{}, err
	}
	return r, nil
}

// reverse returns a reversed copy of b.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

var _ Backend[Ed25519Element] = Ed25519{}
