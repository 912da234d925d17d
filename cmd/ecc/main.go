// Command ecc explores the group of points of a short Weierstrass curve over
// a small prime field.
//
// The curve and base point come from flags, from ECC_* environment
// variables or from a YAML file given with --config:
//
//	ecc order                        # order of G on y² = x³ + 7 over F_223
//	ecc mul 100000                   # 100000·G
//	ecc add 192,105 17,56
//	ECC_PRIME=31 ecc check 3,6
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/driver"
)

const cmdRoot = "ecc"

// env is the state shared by subcommands once the configuration is loaded.
type env struct {
	v       *viper.Viper
	session *driver.Session
	logger  *zap.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	e := &env{v: v}

	rootCmd := &cobra.Command{
		Use:           cmdRoot,
		Short:         "Elliptic curve point arithmetic over prime fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return e.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	// For environment variables.
	v.SetEnvPrefix(strings.ToUpper(cmdRoot))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	config.SetDefaults(v)

	flags := rootCmd.PersistentFlags()
	addFlags(flags, driver.DefaultConfig())
	if err := bindFlags(v, flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(orderCmd(e))
	rootCmd.AddCommand(mulCmd(e))
	rootCmd.AddCommand(addCmd(e))
	rootCmd.AddCommand(checkCmd(e))
	rootCmd.AddCommand(multiplesCmd(e))
	rootCmd.AddCommand(crosscheckCmd(e))

	return rootCmd
}

// addFlags defines the command-line flags that are valid for all ecc
// commands and subcommands.
func addFlags(flags *pflag.FlagSet, d driver.Config) {
	flags.String("config", "", "YAML file holding the curve configuration")
	flags.Uint64("prime", d.Prime, "field order")
	flags.Int64("a", d.A, "curve coefficient a")
	flags.Int64("b", d.B, "curve coefficient b")
	flags.Int64("gx", d.Gx, "x coordinate of the base point G")
	flags.Int64("gy", d.Gy, "y coordinate of the base point G")
	flags.Uint64("order-limit", d.OrderLimit, "maximum number of additions when searching for an order")
	flags.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
}

// bindFlags binds every flag to the viper key of the same name, with
// dashes turned into underscores.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return err
}

// load reads the configuration and builds the session.
func (e *env) load() error {
	if path := e.v.GetString("config"); path != "" {
		e.v.SetConfigFile(path)
		if err := e.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "error reading config file %s", path)
		}
	}

	cfg, err := config.Load(e.v)
	if err != nil {
		return err
	}

	e.logger, err = driver.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	e.session, err = driver.NewSession(cfg, e.logger)
	return err
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
