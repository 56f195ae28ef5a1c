package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	name  string
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 42 }),
		NoError(func(c *testConfig) { c.name = "set" }),
	)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.value)
	require.Equal(t, "set", cfg.name)
}

func TestApplyStopsOnError(t *testing.T) {
	errBad := errors.New("bad value")
	cfg := &testConfig{}

	err := Apply(cfg,
		New(func(c *testConfig) error { return errBad }),
		NoError(func(c *testConfig) { c.value = 1 }),
	)
	require.ErrorIs(t, err, errBad)
	require.Zero(t, cfg.value)
}

func TestApplyNoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
