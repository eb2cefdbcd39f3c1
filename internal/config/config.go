package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds host configuration for the cardstack binaries.
type Config struct {
	Images ImagesConfig
	Stack  StackConfig
	Window WindowConfig
}

// ImagesConfig says where card bitmaps live on disk.
type ImagesConfig struct {
	Dir string
}

// StackConfig holds widget settings.
type StackConfig struct {
	VGap  int
	Cards []string
}

// WindowConfig holds window settings. Zero width or height means "fit the
// stack".
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// Load reads configuration from file and env. Env var overrides use prefix
// CARDSTACK_; CARDSTACK_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("images.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "cardstack", "images"))
	v.SetDefault("stack.vgap", 55)
	v.SetDefault("stack.cards", []string{})
	v.SetDefault("window.title", "Card Stack")
	v.SetDefault("window.width", 0)
	v.SetDefault("window.height", 0)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CARDSTACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cardstack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CARDSTACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
