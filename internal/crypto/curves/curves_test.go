package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/field"
)

// randomCurve picks two random points, derives the curve through them and
// returns the curve and the points.
func randomCurve[T curve.Field[T]](t *testing.T, b Backend[T]) (curve.Curve[T], curve.Point[T], curve.Point[T]) {
	t.Helper()
	for {
		x1, err := Random(b)
		require.NoError(t, err)
		y1, err := Random(b)
		require.NoError(t, err)
		x2, err := Random(b)
		require.NoError(t, err)
		y2, err := Random(b)
		require.NoError(t, err)
		if x1.Equal(x2) {
			continue
		}

		a, bb := CurveThrough(x1, y1, x2, y2)
		c := curve.New(a, bb)
		p, err := c.NewPoint(x1, y1)
		require.NoError(t, err)
		q, err := c.NewPoint(x2, y2)
		require.NoError(t, err)
		return c, p, q
	}
}

func testBackend[T curve.Field[T]](t *testing.T, b Backend[T]) {
	t.Run("encoding", func(t *testing.T) {
		one := b.FromUint64(1)
		two := b.FromUint64(2)
		assert.True(t, one.Add(one).Equal(two))
		assert.True(t, two.Sub(one).Equal(one))
		assert.True(t, two.Div(two).Equal(one))

		fromBytes, err := b.FromBytes([]byte{0x01, 0x00})
		require.NoError(t, err)
		assert.True(t, b.FromUint64(256).Equal(fromBytes))

		minusOne, err := b.FromBytes(new(big.Int).Sub(b.Modulus(), big.NewInt(1)).Bytes())
		require.NoError(t, err)
		assert.True(t, one.Neg().Equal(minusOne))

		_, err = b.FromBytes(b.Modulus().Bytes())
		assert.ErrorIs(t, err, field.ErrOutOfRange)
	})

	t.Run("division by zero", func(t *testing.T) {
		zero := b.FromUint64(0)
		defer func() {
			err, _ := recover().(error)
			assert.ErrorIs(t, err, field.ErrDivisionByZero)
		}()
		b.FromUint64(5).Div(zero)
	})

	t.Run("group law", func(t *testing.T) {
		c, p, q := randomCurve(t, b)
		inf := c.Identity()

		assert.True(t, p.Add(q).Equal(q.Add(p)))
		assert.True(t, p.Add(inf).Equal(p))
		assert.True(t, p.Add(p.Neg()).IsIdentity())
		assert.True(t, p.Add(q).Add(p).Equal(p.Add(q.Add(p))))
		assert.True(t, p.Double().Add(q).Equal(p.Add(p.Add(q))))

		sum := p.Add(q)
		x, y, ok := sum.Coordinates()
		require.True(t, ok)
		assert.True(t, c.Contains(x, y))

		for k := uint64(0); k < 20; k++ {
			assert.True(t, p.ScalarMulNaive(k).Equal(p.ScalarMulUint64(k)), "k=%d", k)
		}
		for _, mn := range [][2]int64{{3, 5}, {100, 27}, {1 << 20, 12345}} {
			m, n := big.NewInt(mn[0]), big.NewInt(mn[1])
			lhs := p.ScalarMul(new(big.Int).Add(m, n))
			rhs := p.ScalarMul(m).Add(p.ScalarMul(n))
			assert.True(t, lhs.Equal(rhs), "(%s+%s)P", m, n)
		}
	})
}

func TestPrimeBackend(t *testing.T) {
	testBackend[field.Element](t, Prime{P: 18446744069414584321})
	assert.Equal(t, "F_223", Prime{P: 223}.Name())
}

func TestEd25519Backend(t *testing.T) {
	testBackend[Ed25519Element](t, Ed25519{})
	assert.Equal(t, "ed25519", Ed25519{}.Name())
}

func TestGoldilocksBackend(t *testing.T) {
	testBackend[GoldilocksElement](t, Goldilocks{})
}

func TestSecp256k1Backend(t *testing.T) {
	testBackend[Secp256k1Element](t, Secp256k1{})
}

func TestCurveThrough(t *testing.T) {
	b := Prime{P: 223}
	a, bb := CurveThrough(b.FromUint64(192), b.FromUint64(105), b.FromUint64(17), b.FromUint64(56))
	assert.True(t, b.FromUint64(0).Equal(a))
	assert.True(t, b.FromUint64(7).Equal(bb))
}

// The goldilocks backend and field.Element implement the same field, so the
// generic group law must produce identical coordinates over both.
func TestGoldilocksMatchesPrimeField(t *testing.T) {
	const p = 18446744069414584321
	g := Goldilocks{}
	f := Prime{P: p}

	gc, gp, gq := randomCurve[GoldilocksElement](t, g)
	gpx, gpy, _ := gp.Coordinates()
	gqx, gqy, _ := gq.Coordinates()

	conv := func(x GoldilocksElement) field.Element { return f.FromUint64(x.Uint64()) }
	fc := curve.New(conv(gc.A), conv(gc.B))
	fp := fc.MustNewPoint(conv(gpx), conv(gpy))
	fq := fc.MustNewPoint(conv(gqx), conv(gqy))

	same := func(gr curve.Point[GoldilocksElement], fr curve.Point[field.Element]) bool {
		if gr.IsIdentity() || fr.IsIdentity() {
			return gr.IsIdentity() == fr.IsIdentity()
		}
		return conv(gr.X()).Equal(fr.X()) && conv(gr.Y()).Equal(fr.Y())
	}

	assert.True(t, same(gp.Add(gq), fp.Add(fq)))
	assert.True(t, same(gp.Double(), fp.Double()))
	k, err := RandomScalar(new(big.Int).Lsh(big.NewInt(1), 128))
	require.NoError(t, err)
	assert.True(t, same(gp.ScalarMul(k), fp.ScalarMul(k)), "k=%s", k)
}

func TestSecp256k1CrossCheck(t *testing.T) {
	n := Secp256k1Order()
	scalars := []*big.Int{
		big.NewInt(0),
		new(big.Int).Set(n),
		new(big.Int).Neg(n),
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(0xdeadbeef),
		new(big.Int).Sub(n, big.NewInt(1)),
		new(big.Int).Add(n, big.NewInt(5)),
		big.NewInt(-4),
	}
	for i := 0; i < 3; i++ {
		k, err := RandomScalar(n)
		require.NoError(t, err)
		scalars = append(scalars, k)
	}

	for _, k := range scalars {
		_, err := CrossCheckSecp256k1(k)
		assert.NoError(t, err, "k=%s", k)
	}

	g := Secp256k1Generator()
	minusOne, err := CrossCheckSecp256k1(new(big.Int).Sub(n, big.NewInt(1)))
	require.NoError(t, err)
	assert.True(t, g.Neg().Equal(minusOne))

	zero, err := CrossCheckSecp256k1(n)
	require.NoError(t, err)
	assert.True(t, zero.IsIdentity())
}
