package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsAppliedWithoutConfigFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	setDefaults()

	cfg := NewToolConfigFromViper()
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, "AES-256-CBC", cfg.Cipher)
	assert.False(t, cfg.AllowInsecureDump)
}

func TestViperOverridesDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	setDefaults()
	viper.Set("output_format", "json")
	viper.Set("allow_insecure_dump", true)

	cfg := NewToolConfigFromViper()
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.AllowInsecureDump)
	assert.Equal(t, "AES-256-CBC", cfg.Cipher, "unset keys keep their defaults")
}
