package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bvhkit/cmd/bvhctl/logger"
)

// newConfigTestCmd returns a command carrying the flags initConfig binds.
func newConfigTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "")
	cmd.Flags().StringVar(&logLevel, "log-level", "off", "")
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "")
	return cmd
}

func TestInitConfig_File(t *testing.T) {
	resetFlags()
	t.Cleanup(func() { logger.Init(logger.Options{}) })

	cfgFile = filepath.Join(t.TempDir(), "bvhctl.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("json: true\ndepth: 3\nlog-level: debug\n"), 0o644))

	cmd := newConfigTestCmd()
	require.NoError(t, initConfig(cmd))

	assert.True(t, jsonOut)
	assert.Equal(t, 3, treeDepth)
	assert.Equal(t, "debug", logLevel)
	assert.False(t, noValidate)
}

func TestInitConfig_FlagBeatsFile(t *testing.T) {
	resetFlags()
	cfgFile = filepath.Join(t.TempDir(), "bvhctl.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("depth: 3\n"), 0o644))

	cmd := newConfigTestCmd()
	require.NoError(t, cmd.Flags().Set("depth", "1"))
	require.NoError(t, initConfig(cmd))

	assert.Equal(t, 1, treeDepth)
}

func TestInitConfig_Env(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BVHCTL_NO_VALIDATE", "true")

	cmd := newConfigTestCmd()
	require.NoError(t, initConfig(cmd))

	assert.True(t, noValidate)
}

func TestInitConfig_Errors(t *testing.T) {
	t.Run("explicit config missing", func(t *testing.T) {
		resetFlags()
		cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
		assert.Error(t, initConfig(newConfigTestCmd()))
	})

	t.Run("bad log level", func(t *testing.T) {
		resetFlags()
		t.Setenv("HOME", t.TempDir())
		cmd := newConfigTestCmd()
		require.NoError(t, cmd.Flags().Set("log-level", "chatty"))
		assert.Error(t, initConfig(cmd))
	})

	t.Run("bad value type", func(t *testing.T) {
		resetFlags()
		cfgFile = filepath.Join(t.TempDir(), "bvhctl.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("depth: deep\n"), 0o644))
		assert.Error(t, initConfig(newConfigTestCmd()))
	})
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"info", "stats", "tree", "query", "validate", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
