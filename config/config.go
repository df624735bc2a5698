// Package config owns tscribe's settings registry and the viper engine behind it.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/constant"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/where"
)

// EnvKeyReplacer maps "download.delay_ms" to "download_delay_ms" for environment lookups.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup wires defaults, TSCRIBE_* environment bindings and the optional tscribe.toml file.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// Validate rejects values the pipeline cannot act on.
func Validate() error {
	modes := []string{constant.ModeAsk, constant.ModeBasic, constant.ModeAdvanced}
	if mode := viper.GetString(key.DownloadMode); !lo.Contains(modes, mode) {
		return fmt.Errorf("invalid %s %q: expected one of %s", key.DownloadMode, mode, strings.Join(modes, ", "))
	}

	if delay := viper.GetInt(key.DownloadDelayMs); delay < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", key.DownloadDelayMs, delay)
	}

	if timeout := viper.GetInt(key.NetworkTimeout); timeout <= 0 {
		return fmt.Errorf("invalid %s %d: must be positive", key.NetworkTimeout, timeout)
	}

	if viper.GetString(key.DownloadManifest) == "" {
		return fmt.Errorf("%s must not be empty", key.DownloadManifest)
	}

	return nil
}

// File returns the path of the TOML config file, whether or not it exists yet.
func File() string {
	return filepath.Join(where.Config(), fmt.Sprintf("%s.%s", constant.App, "toml"))
}
