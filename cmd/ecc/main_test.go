package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/internal/driver"
	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/field"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(viper.New())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestOrderCommand(t *testing.T) {
	out, err := execute(t, "order")
	require.NoError(t, err)
	assert.Equal(t, "the order is 7\n", out)

	out, err = execute(t, "order", "47,71")
	require.NoError(t, err)
	assert.Equal(t, "the order is 21\n", out)

	out, err = execute(t, "order", "--list")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"1G = (15, 86)",
		"2G = (139, 86)",
		"3G = (69, 137)",
		"4G = (69, 86)",
		"5G = (139, 137)",
		"6G = (15, 137)",
		"7G = infinity",
		"the order is 7",
	}, "\n")+"\n", out)

	_, err = execute(t, "--order-limit", "5", "order")
	assert.ErrorIs(t, err, driver.ErrOrderLimit)

	_, err = execute(t, "order", "200,119")
	assert.ErrorIs(t, err, curve.ErrPointNotOnCurve)
}

func TestMulCommand(t *testing.T) {
	out, err := execute(t, "mul", "100000")
	require.NoError(t, err)
	assert.Equal(t, "100000G = (139, 137)\n", out)

	out, err = execute(t, "mul", "--point", "47,71", "--", "2", "4", "8", "21", "-1")
	require.NoError(t, err)
	assert.Equal(t, "2P = (36, 111)\n4P = (194, 51)\n8P = (116, 55)\n21P = infinity\n-1P = (47, 152)\n", out)

	out, err = execute(t, "mul", "--naive", "3", "0")
	require.NoError(t, err)
	assert.Equal(t, "3G = (69, 137)\n0G = infinity\n", out)

	_, err = execute(t, "mul", "--naive", "--", "-3")
	assert.Error(t, err)

	_, err = execute(t, "mul", "three")
	assert.Error(t, err)

	_, err = execute(t, "mul")
	assert.Error(t, err)
}

func TestAddCommand(t *testing.T) {
	out, err := execute(t, "add", "192,105", "17,56")
	require.NoError(t, err)
	assert.Equal(t, "(170, 142)\n", out)

	out, err = execute(t, "add", "47,71", "47,152")
	require.NoError(t, err)
	assert.Equal(t, "infinity\n", out)

	out, err = execute(t, "add", "inf", "143,98", "76,66")
	require.NoError(t, err)
	assert.Equal(t, "(47, 71)\n", out)

	_, err = execute(t, "add", "42,99", "17,56")
	assert.ErrorIs(t, err, curve.ErrPointNotOnCurve)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "192,105")
	require.NoError(t, err)
	assert.Equal(t, "(192, 105) is on y^2 = x^3 + 0*x + 7\n", out)

	out, err = execute(t, "check", "200,119")
	require.NoError(t, err)
	assert.Equal(t, "(200, 119) is not on y^2 = x^3 + 0*x + 7\n", out)

	_, err = execute(t, "check", "200")
	assert.Error(t, err)
}

func TestMultiplesCommand(t *testing.T) {
	out, err := execute(t, "multiples", "3")
	require.NoError(t, err)
	assert.Equal(t, "1G = (15, 86)\n2G = (139, 86)\n3G = (69, 137)\n", out)

	_, err = execute(t, "--order-limit", "2", "multiples", "3")
	assert.Error(t, err)
}

func TestEnvironmentConfig(t *testing.T) {
	t.Setenv("ECC_PRIME", "31")
	t.Setenv("ECC_A", "2")
	t.Setenv("ECC_B", "3")
	t.Setenv("ECC_GX", "3")
	t.Setenv("ECC_GY", "6")

	out, err := execute(t, "check", "3,6")
	require.NoError(t, err)
	assert.Equal(t, "(3, 6) is on y^2 = x^3 + 2*x + 3\n", out)

	// Flags take precedence over the environment.
	out, err = execute(t, "--prime", "223", "--a", "0", "--b", "7", "--gx", "15", "--gy", "86", "order")
	require.NoError(t, err)
	assert.Equal(t, "the order is 7\n", out)

	t.Setenv("ECC_PRIME", "32")
	_, err = execute(t, "order")
	assert.ErrorIs(t, err, field.ErrInvalidModulus)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prime: 31\na: 2\nb: 3\ngx: 3\ngy: 6\n"), 0o600))

	out, err := execute(t, "--config", path, "check", "3,6")
	require.NoError(t, err)
	assert.Equal(t, "(3, 6) is on y^2 = x^3 + 2*x + 3\n", out)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "order")
	assert.Error(t, err)
}

func TestCrosscheckCommand(t *testing.T) {
	out, err := execute(t, "crosscheck", "1", "2", "0xff")
	require.NoError(t, err)
	assert.Equal(t, "ok 1\nok 2\nok ff\n", out)

	n := "0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	out, err = execute(t, "crosscheck", "0", n)
	require.NoError(t, err)
	assert.Equal(t, "ok 0\nok "+n[2:]+"\n", out)

	out, err = execute(t, "crosscheck", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "ok "))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: development build")

	// The version command must not depend on a valid configuration.
	t.Setenv("ECC_PRIME", "1")
	_, err = execute(t, "version")
	assert.NoError(t, err)
}
