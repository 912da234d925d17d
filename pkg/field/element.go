package field

import (
	"math/bits"
	"strconv"
)

// Element is a residue modulo a prime.
//
// The zero value is not a valid element: it has no modulus. Use [New],
// [MustNew], [FromInt64], [Zero] or [One].
type Element struct {
	value uint64 // always in [0, prime)
	prime uint64
}

// New returns value as an element of the field of order prime.
// It fails with ErrOutOfRange if value >= prime and with ErrInvalidModulus
// if prime < 2.
func New(value, prime uint64) (Element, error) {
	if prime < 2 {
		return Element{}, newError("new", ErrInvalidModulus, "prime %d", prime)
	}
	if value >= prime {
		return Element{}, newError("new", ErrOutOfRange, "value %d not in range 0 to %d", value, prime-1)
	}
	return Element{value: value, prime: prime}, nil
}

// MustNew is like New but panics if the element cannot be constructed.
func MustNew(value, prime uint64) Element {
	e, err := New(value, prime)
	if err != nil {
		panic(err)
	}
	return e
}

// FromInt64 reduces a signed value into [0, prime) and returns it as an
// element. Negative values wrap around, so FromInt64(-1, p) is p-1.
func FromInt64(value int64, prime uint64) Element {
	if prime < 2 {
		panic(newError("from int64", ErrInvalidModulus, "prime %d", prime))
	}
	if value >= 0 {
		return Element{value: uint64(value) % prime, prime: prime}
	}
	// |value| computed without overflowing on math.MinInt64.
	r := (uint64(-(value + 1)) + 1) % prime
	if r == 0 {
		return Element{value: 0, prime: prime}
	}
	return Element{value: prime - r, prime: prime}
}

// Zero returns the additive identity of the field of order prime.
func Zero(prime uint64) Element {
	return MustNew(0, prime)
}

// One returns the multiplicative identity of the field of order prime.
func One(prime uint64) Element {
	return MustNew(1, prime)
}

// Value returns the canonical representative in [0, prime).
func (x Element) Value() uint64 {
	return x.value
}

// Prime returns the field modulus.
func (x Element) Prime() uint64 {
	return x.prime
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.value == 0
}

// Equal reports whether x and y have the same value and the same modulus.
func (x Element) Equal(y Element) bool {
	return x == y
}

// String returns the decimal representative of x.
func (x Element) String() string {
	return strconv.FormatUint(x.value, 10)
}

// Add returns x + y.
func (x Element) Add(y Element) Element {
	x.mustMatch("add", y)
	sum, carry := bits.Add64(x.value, y.value, 0)
	if carry != 0 || sum >= x.prime {
		// Wraps back into range when the true sum exceeded 2^64.
		sum -= x.prime
	}
	return Element{value: sum, prime: x.prime}
}

// Sub returns x - y.
func (x Element) Sub(y Element) Element {
	x.mustMatch("sub", y)
	if x.value >= y.value {
		return Element{value: x.value - y.value, prime: x.prime}
	}
	return Element{value: x.value + (x.prime - y.value), prime: x.prime}
}

// Neg returns the additive inverse -x.
func (x Element) Neg() Element {
	if x.value == 0 {
		return x
	}
	return Element{value: x.prime - x.value, prime: x.prime}
}

// Mul returns x * y, using a 128-bit intermediate product.
func (x Element) Mul(y Element) Element {
	x.mustMatch("mul", y)
	return x.mul(y)
}

func (x Element) mul(y Element) Element {
	hi, lo := bits.Mul64(x.value, y.value)
	return Element{value: bits.Rem64(hi, lo, x.prime), prime: x.prime}
}

// Pow returns x raised to exponent.
//
// For nonzero x the exponent is first reduced modulo prime-1, the order of
// the multiplicative group, so negative exponents yield powers of the
// inverse. Pow(0) is one for every x. A negative power of zero panics with
// ErrDivisionByZero.
func (x Element) Pow(exponent int64) Element {
	if x.value == 0 {
		switch {
		case exponent == 0:
			return Element{value: 1, prime: x.prime}
		case exponent > 0:
			return x
		default:
			panic(newError("pow", ErrDivisionByZero, "zero to the power %d", exponent))
		}
	}

	order := x.prime - 1
	var e uint64
	if exponent >= 0 {
		e = uint64(exponent) % order
	} else {
		e = (uint64(-(exponent + 1)) + 1) % order
		if e != 0 {
			e = order - e
		}
	}
	return x.exp(e)
}

// exp computes x^e by left-to-right square-and-multiply.
func (x Element) exp(e uint64) Element {
	result := Element{value: 1, prime: x.prime}
	for i := bits.Len64(e) - 1; i >= 0; i-- {
		result = result.mul(result)
		if (e>>uint(i))&1 == 1 {
			result = result.mul(x)
		}
	}
	return result
}

// Inverse returns the multiplicative inverse x^(prime-2).
// It panics with ErrDivisionByZero if x is zero.
func (x Element) Inverse() Element {
	if x.value == 0 {
		panic(newError("inverse", ErrDivisionByZero, "zero has no inverse mod %d", x.prime))
	}
	return x.exp(x.prime - 2)
}

// Div returns x / y.
// It panics with ErrDivisionByZero if y is zero.
func (x Element) Div(y Element) Element {
	x.mustMatch("div", y)
	if y.value == 0 {
		panic(newError("div", ErrDivisionByZero, "%d / 0 mod %d", x.value, x.prime))
	}
	return x.mul(y.Inverse())
}

func (x Element) mustMatch(op string, y Element) {
	if x.prime != y.prime {
		panic(newError(op, ErrFieldMismatch, "moduli %d and %d", x.prime, y.prime))
	}
}
