package main

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateDefaultConfig(t *testing.T) {
	cnf := generateDefaultConfig()
	assert.NotEmpty(t, cnf.ServerPort)
	assert.Equal(t, 8192, cnf.DialogBufferSize)
	assert.True(t, cnf.ShowSystrayIcon)

	key, err := hex.DecodeString(cnf.SecretKeyHex)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	assert.NoError(t, cnf.EmptyCheck())
}

func TestConfigEmptyCheck(t *testing.T) {
	cnf := generateDefaultConfig()

	bad := cnf
	bad.ServerPort = ""
	assert.Error(t, bad.EmptyCheck())

	bad = cnf
	bad.SecretKeyHex = ""
	assert.Error(t, bad.EmptyCheck())

	bad = cnf
	bad.DialogBufferSize = 0
	assert.Error(t, bad.EmptyCheck())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cnf := generateDefaultConfig()
	cnf.Language = "zh"
	cnf.DialogBufferSize = 4096
	require.NoError(t, saveConfig(path, cnf))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var loaded Config
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, cnf, loaded)
}
