// Package config provides configuration for the dsapkey tool. Settings are
// resolved by viper from an optional YAML config file with built-in
// defaults, and can be overridden per-invocation by command flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var (
	// CfgFile is an explicit config file path set by the CLI flag; empty
	// means the default location is used.
	CfgFile string

	log = logger.GetGoI2PLogger()
)

const baseDirName = ".dsapkey"

// ToolConfig is a snapshot of the tool settings.
type ToolConfig struct {
	// OutputFormat is the default rendering of the inspect command,
	// "yaml" or "json".
	OutputFormat string
	// Cipher is the default PEM cipher name used when exporting an
	// encrypted private key without an explicit cipher choice.
	Cipher string
	// AllowInsecureDump permits printing private key components.
	AllowInsecureDump bool
}

// DefaultToolConfig returns the built-in settings.
func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		OutputFormat:      "yaml",
		Cipher:            "AES-256-CBC",
		AllowInsecureDump: false,
	}
}

// InitConfig wires viper to the config file (explicit or default location)
// and loads defaults. A missing config file is not an error.
func InitConfig() {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(buildConfigDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug("No config file found, using defaults")
		} else {
			log.WithError(err).Warn("Failed to read config file")
		}
	}
}

func setDefaults() {
	viper.SetDefault("output_format", DefaultToolConfig().OutputFormat)
	viper.SetDefault("cipher", DefaultToolConfig().Cipher)
	viper.SetDefault("allow_insecure_dump", DefaultToolConfig().AllowInsecureDump)
}

// NewToolConfigFromViper creates a ToolConfig from current viper settings.
func NewToolConfigFromViper() *ToolConfig {
	return &ToolConfig{
		OutputFormat:      viper.GetString("output_format"),
		Cipher:            viper.GetString("cipher"),
		AllowInsecureDump: viper.GetBool("allow_insecure_dump"),
	}
}

func buildConfigDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.WithError(err).Warn("Could not determine home directory")
		return baseDirName
	}
	return filepath.Join(home, baseDirName)
}
