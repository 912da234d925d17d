// Package driver wires the field and curve packages to the ecc command: it
// builds the configured curve, searches for point orders and turns
// arithmetic panics into errors.
package driver

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/field"
)

// ErrOrderLimit is returned by Order when no multiple of the point up to
// the limit is the identity.
var ErrOrderLimit = errors.New("order search limit reached")

// Point is a point of a curve over a word-sized prime field.
type Point = curve.Point[field.Element]

// Session is a configured curve with its base point.
type Session struct {
	Config Config
	Curve  curve.Curve[field.Element]
	G      Point

	logger *zap.Logger
}

// NewSession builds the curve and base point described by cfg.
func NewSession(cfg Config, logger *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		Config: cfg,
		Curve:  curve.New(field.FromInt64(cfg.A, cfg.Prime), field.FromInt64(cfg.B, cfg.Prime)),
		logger: logger,
	}
	if s.Singular() {
		logger.Warn("curve is singular, the group law does not hold",
			zap.Stringer("curve", s.Curve), zap.Uint64("prime", cfg.Prime))
	}

	g, err := s.Curve.NewPoint(s.Element(cfg.Gx), s.Element(cfg.Gy))
	if err != nil {
		return nil, errors.Wrapf(err, "base point (%d, %d)", cfg.Gx, cfg.Gy)
	}
	s.G = g

	logger.Debug("session ready", zap.Stringer("curve", s.Curve), zap.Stringer("G", g))
	return s, nil
}

// Element reduces v into the session field. Every residue of a prime below
// 2^64 has a representative in int64 range, so configured coordinates can
// name any point.
func (s *Session) Element(v int64) field.Element {
	return field.FromInt64(v, s.Config.Prime)
}

// Singular reports whether the discriminant 4a³ + 27b² is zero.
func (s *Session) Singular() bool {
	p := s.Config.Prime
	a, b := s.Curve.A, s.Curve.B
	d := field.FromInt64(4, p).Mul(a.Pow(3)).Add(field.FromInt64(27, p).Mul(b.Pow(2)))
	return d.IsZero()
}

// ParsePoint parses "x,y" or "inf" into a point of the session curve.
func (s *Session) ParsePoint(text string) (Point, error) {
	text = strings.TrimSpace(text)
	if text == "inf" || text == "infinity" {
		return s.Curve.Identity(), nil
	}

	x, y, err := s.ParseCoordinates(text)
	if err != nil {
		return Point{}, err
	}
	p, err := s.Curve.NewPoint(x, y)
	if err != nil {
		return Point{}, errors.Wrapf(err, "point %q", text)
	}
	return p, nil
}

// ParseCoordinates parses "x,y" into field elements without checking the
// curve equation. Coordinates may be negative or exceed the prime; they are
// reduced into the field.
func (s *Session) ParseCoordinates(text string) (x, y field.Element, err error) {
	xs, ys, ok := strings.Cut(text, ",")
	if !ok {
		return x, y, errors.Errorf("point %q: want x,y or inf", text)
	}
	if x, err = s.parseElement(xs); err != nil {
		return x, y, errors.Wrapf(err, "point %q", text)
	}
	if y, err = s.parseElement(ys); err != nil {
		return x, y, errors.Wrapf(err, "point %q", text)
	}
	return x, y, nil
}

func (s *Session) parseElement(text string) (field.Element, error) {
	v, err := ParseScalar(text)
	if err != nil {
		return field.Element{}, err
	}
	v.Mod(v, new(big.Int).SetUint64(s.Config.Prime))
	return field.New(v.Uint64(), s.Config.Prime)
}

// Order returns the order of G under the configured limit.
func (s *Session) Order() (uint64, error) {
	n, err := Order(s.G, s.Config.OrderLimit)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("order found", zap.Stringer("G", s.G), zap.Uint64("order", n))
	return n, nil
}

// ParseScalar parses a decimal, or 0x-prefixed hexadecimal, integer of any
// size.
func ParseScalar(text string) (*big.Int, error) {
	k, ok := new(big.Int).SetString(strings.TrimSpace(text), 0)
	if !ok {
		return nil, errors.Errorf("invalid scalar %q", text)
	}
	return k, nil
}

// Order returns the smallest n >= 1 with n·g equal to the identity, found by
// repeated addition. It gives up with ErrOrderLimit after limit additions.
func Order[T curve.Field[T]](g curve.Point[T], limit uint64) (uint64, error) {
	var order uint64
	Walk(g, limit, func(i uint64, p curve.Point[T]) bool {
		if p.IsIdentity() {
			order = i
			return false
		}
		return true
	})
	if order == 0 {
		return 0, errors.Wrapf(ErrOrderLimit, "no multiple of %v up to %d is the identity", g, limit)
	}
	return order, nil
}

// Multiples returns 1·g, 2·g, ..., n·g.
func Multiples[T curve.Field[T]](g curve.Point[T], n uint64) []curve.Point[T] {
	out := make([]curve.Point[T], 0, n)
	Walk(g, n, func(_ uint64, p curve.Point[T]) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Walk calls fn with i and i·g for i = 1, 2, ..., limit, computing each
// multiple with one addition. It stops early when fn returns false.
func Walk[T curve.Field[T]](g curve.Point[T], limit uint64, fn func(i uint64, p curve.Point[T]) bool) {
	acc := g
	for i := uint64(1); i <= limit; i++ {
		if !fn(i, acc) {
			return
		}
		acc = acc.Add(g)
	}
}

// Catch runs fn and converts a panic raised by the field or curve
// packages into an error. Any other panic is propagated.
func Catch(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *field.Error:
			err = errors.Wrap(e, "field arithmetic")
		case *curve.Error:
			err = errors.Wrap(e, "curve arithmetic")
		default:
			panic(r)
		}
	}()
	return fn()
}
