package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanHelwig/aws-custom-cli/config"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"start-ec2", "stop-ec2", "upload-s3", "create-policy", "list-ec2"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func resetGlobals(t *testing.T) {
	t.Helper()
	origCfg, origRegion, origProfile, origDebug := cfgFile, region, profile, debug
	t.Cleanup(func() {
		cfgFile, region, profile, debug = origCfg, origRegion, origProfile, origDebug
	})
	cfgFile, region, profile, debug = "", "", "", false
}

func TestSetup_ConfigFileValues(t *testing.T) {
	resetGlobals(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: eu-central-1\nprofile: dev\n"), 0o600))
	cfgFile = path

	require.NoError(t, setup(rootCmd, nil))

	assert.Equal(t, "eu-central-1", region)
	assert.Equal(t, "dev", profile)
}

func TestSetup_FlagOverridesConfig(t *testing.T) {
	resetGlobals(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: eu-central-1\n"), 0o600))
	cfgFile = path
	region = "us-west-2"

	require.NoError(t, setup(rootCmd, nil))

	assert.Equal(t, "us-west-2", region)
}

func TestSetup_DefaultRegion(t *testing.T) {
	resetGlobals(t)
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")

	require.NoError(t, setup(rootCmd, nil))

	assert.Equal(t, config.DefaultRegion, region)
}
