package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Workers     int    `mapstructure:"workers"`
	Color       string `mapstructure:"color"`
	LogLevel    string `mapstructure:"log_level"`
	Pager       bool   `mapstructure:"pager"`
	ColorPath   string `mapstructure:"color_path"`
	ColorLine   string `mapstructure:"color_line"`
	ColorColumn string `mapstructure:"color_column"`
	ColorMatch  string `mapstructure:"color_match"`
}

// Color modes accepted by the color setting
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("workers", runtime.GOMAXPROCS(0))
	viper.SetDefault("color", ColorAuto)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("pager", false)
	viper.SetDefault("color_path", "32")   // Green
	viper.SetDefault("color_line", "34")   // Blue
	viper.SetDefault("color_column", "36") // Cyan
	viper.SetDefault("color_match", "31")  // Red

	viper.SetConfigName("rgrep")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "rgrep"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("RGREP")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetWorkers returns the worker pool size, never less than one
func GetWorkers() int {
	if n := viper.GetInt("workers"); n > 0 {
		return n
	}
	return 1
}

// GetColor returns the color mode (auto, always, never)
func GetColor() string {
	switch mode := viper.GetString("color"); mode {
	case ColorAlways, ColorNever:
		return mode
	default:
		return ColorAuto
	}
}

// GetLogLevel returns the minimum log level
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetPager returns whether results should be shown in the pager
func GetPager() bool {
	return viper.GetBool("pager")
}

// GetColorPath returns ANSI color code for file paths
func GetColorPath() string {
	return viper.GetString("color_path")
}

// GetColorLine returns ANSI color code for line numbers
func GetColorLine() string {
	return viper.GetString("color_line")
}

// GetColorColumn returns ANSI color code for columns
func GetColorColumn() string {
	return viper.GetString("color_column")
}

// GetColorMatch returns ANSI color code for matched text
func GetColorMatch() string {
	return viper.GetString("color_match")
}
