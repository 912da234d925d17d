package curves

import (
	"math/big"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// GoldilocksElement is an element of the field of order 2^64 - 2^32 + 1.
type GoldilocksElement struct {
	v goldilocks.Element
}

func (x GoldilocksElement) Add(y GoldilocksElement) GoldilocksElement {
	var r GoldilocksElement
	r.v.Add(&x.v, &y.v)
	return r
}

func (x GoldilocksElement) Sub(y GoldilocksElement) GoldilocksElement {
	var r GoldilocksElement
	r.v.Sub(&x.v, &y.v)
	return r
}

func (x GoldilocksElement) Neg() GoldilocksElement {
	var r GoldilocksElement
	r.v.Neg(&x.v)
	return r
}

func (x GoldilocksElement) Mul(y GoldilocksElement) GoldilocksElement {
	var r GoldilocksElement
	r.v.Mul(&x.v, &y.v)
	return r
}

func (x GoldilocksElement) Div(y GoldilocksElement) GoldilocksElement {
	if y.v.IsZero() {
		panic(divisionByZero("goldilocks"))
	}
	var r GoldilocksElement
	r.v.Div(&x.v, &y.v)
	return r
}

func (x GoldilocksElement) Equal(y GoldilocksElement) bool {
	return x.v.Equal(&y.v)
}

// Uint64 returns the canonical representative of x.
func (x GoldilocksElement) Uint64() uint64 {
	return x.v.Uint64()
}

func (x GoldilocksElement) String() string {
	return x.v.String()
}

// Goldilocks is the backend for the field of order 2^64 - 2^32 + 1.
type Goldilocks struct{}

func (Goldilocks) Name() string {
	return "goldilocks"
}

func (Goldilocks) Modulus() *big.Int {
	return goldilocks.Modulus()
}

func (Goldilocks) FromUint64(v uint64) GoldilocksElement {
	var r GoldilocksElement
	r.v.SetUint64(v)
	return r
}

func (g Goldilocks) FromBytes(b []byte) (GoldilocksElement, error) {
	v, err := canonical(b, g.Modulus())
	if err != nil {
		return GoldilocksElement{}, err
	}
	return g.FromUint64(v.Uint64()), nil
}

var _ Backend[GoldilocksElement] = Goldilocks{}
