// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/constant"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/key"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "TSCRIBE_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the directory holding tscribe.toml.
// TSCRIBE_CONFIG_PATH takes precedence over the platform user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Queries resolves the file remembering season filter patterns.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Output resolves the transcript output root. It is not created here; the pipeline does that.
func Output() string {
	return viper.GetString(key.DownloadOutput)
}

// Manifest resolves the resume manifest inside the output root.
func Manifest() string {
	return filepath.Join(Output(), viper.GetString(key.DownloadManifest))
}

// Providers resolves the directory scanned for custom site profiles.
func Providers() string {
	return ensureDir(filepath.Join(Config(), "providers"))
}
