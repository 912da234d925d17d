// Package config loads a driver.Config through viper. It is kept apart from
// package driver so that the js/wasm binding does not link viper.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/smallyu/go-weierstrass/internal/driver"
)

// SetDefaults registers driver.DefaultConfig under the keys Load reads.
func SetDefaults(v *viper.Viper) {
	d := driver.DefaultConfig()
	v.SetDefault("prime", d.Prime)
	v.SetDefault("a", d.A)
	v.SetDefault("b", d.B)
	v.SetDefault("gx", d.Gx)
	v.SetDefault("gy", d.Gy)
	v.SetDefault("order_limit", d.OrderLimit)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads a driver.Config from v and validates it.
func Load(v *viper.Viper) (driver.Config, error) {
	var cfg driver.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return driver.Config{}, errors.Wrap(err, "error unmarshaling config")
	}
	if err := cfg.Validate(); err != nil {
		return driver.Config{}, err
	}
	return cfg, nil
}
