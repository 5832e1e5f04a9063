package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and format validations for Settings.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	settings := new(Config)

	err := Validate(settings)
	require.Error(t, err)

	// Bad socket.
	settings = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(settings)
	require.Error(t, err)

	// Unknown log format.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
		LogFormat:     "xml",
	}

	err = Validate(settings)
	require.ErrorIs(t, err, errUnknownLogFormat)

	// Nil settings.
	require.ErrorIs(t, Validate(nil), errConfigIsNotSet)
}

// TestValidate_Defaults ensures omitted optional fields are filled in.
func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	settings := &Config{
		ServerAddress: "127.0.0.1:50051",
	}

	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultLedgerFilename, settings.LedgerFile)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)
	require.Equal(t, DefaultLogFormat, settings.LogFormat)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress: "127.0.0.1:50051",
		LedgerFile:    filepath.Join(dir, "vault.db"),
		LogLevel:      "debug",
		LogFormat:     "json",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings.ServerAddress, loaded.ServerAddress)
	require.Equal(t, settings.LedgerFile, loaded.LedgerFile)
	require.Equal(t, "debug", loaded.LogLevel)
	require.Equal(t, "json", loaded.LogFormat)
	require.Equal(t, DefaultTimeout, loaded.Timeout)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.ErrorIs(t, Save(path, nil), errConfigIsNotSet)
}
