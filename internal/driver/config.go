package driver

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/pkg/field"
)

// Config selects the curve y² = x³ + a·x + b over F_prime and a base point G
// on it. Coefficients and coordinates may be negative; they are reduced
// into the field. Package config loads it from flags, environment and files.
type Config struct {
	Prime      uint64 `mapstructure:"prime"`
	A          int64  `mapstructure:"a"`
	B          int64  `mapstructure:"b"`
	Gx         int64  `mapstructure:"gx"`
	Gy         int64  `mapstructure:"gy"`
	OrderLimit uint64 `mapstructure:"order_limit"`
	LogLevel   string `mapstructure:"log_level"`
}

// DefaultConfig is the textbook curve y² = x³ + 7 over F_223 with the
// generator (15, 86) of a subgroup of order 7.
func DefaultConfig() Config {
	return Config{
		Prime:      223,
		A:          0,
		B:          7,
		Gx:         15,
		Gy:         86,
		OrderLimit: 1 << 20,
		LogLevel:   "info",
	}
}

// Validate checks that Prime is a prime and that OrderLimit is positive.
func (c Config) Validate() error {
	if c.Prime < 2 {
		return errors.Wrapf(field.ErrInvalidModulus, "prime %d", c.Prime)
	}
	// ProbablyPrime is exact for inputs below 2^64.
	if !new(big.Int).SetUint64(c.Prime).ProbablyPrime(0) {
		return errors.Wrapf(field.ErrInvalidModulus, "%d is not prime", c.Prime)
	}
	if c.OrderLimit == 0 {
		return errors.New("order limit must be positive")
	}
	return nil
}
