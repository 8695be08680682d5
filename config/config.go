package config

import (
	"path/filepath"
	"runtime"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"github.com/bytom/folio/errors"
)

// Output formats of the build command.
const (
	FormatHex  = "hex"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`
	// Options for the compiler pipeline
	Compiler *CompilerConfig `mapstructure:"compiler"`
	Output   *OutputConfig   `mapstructure:"output"`
}

// Default configurable parameters.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Compiler:   DefaultCompilerConfig(),
		Output:     DefaultOutputConfig(),
	}
}

// Set the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// Validate checks the values a config file or flag may have set.
func (cfg *Config) Validate() error {
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return errors.WithDetailf(ErrInvalidConfig, "log_level: %v", err)
	}
	if cfg.Compiler.MaxInstructions < 0 {
		return errors.WithDetailf(ErrInvalidConfig, "compiler.max_instructions must not be negative, got %d", cfg.Compiler.MaxInstructions)
	}
	switch cfg.Output.Format {
	case FormatHex, FormatJSON:
	default:
		return errors.WithDetailf(ErrInvalidConfig, "output.format must be %s or %s, got %q", FormatHex, FormatJSON, cfg.Output.Format)
	}
	return nil
}

//-----------------------------------------------------------------------------
// BaseConfig
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	//log level to set
	LogLevel string `mapstructure:"log_level"`

	// log directory; empty keeps logging on stderr
	LogFile string `mapstructure:"log_file"`
}

// Default configurable base parameters.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel: "info",
		LogFile:  "",
	}
}

func (b BaseConfig) LogDir() string {
	return rootify(b.LogFile, b.RootDir)
}

// CompilerConfig
type CompilerConfig struct {
	// Upper bound on the expanded length of main, 0 for none
	MaxInstructions int `mapstructure:"max_instructions"`
	// Record layout version the target machine expects, empty for any
	Layout string `mapstructure:"layout"`
}

func DefaultCompilerConfig() *CompilerConfig {
	return &CompilerConfig{
		MaxInstructions: 1 << 16,
		Layout:          "",
	}
}

// OutputConfig
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

func DefaultOutputConfig() *OutputConfig {
	return &OutputConfig{Format: FormatHex}
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ExpandHome(root), path)
}

// ExpandHome replaces a leading ~ in path with the user's home directory.
func ExpandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		log.WithField("path", path).Warning("unable to expand home directory")
		return path
	}
	return expanded
}

// DefaultDataDir is the default directory holding the config file and logs.
func DefaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return "./.folio"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Folio")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Folio")
	default:
		return filepath.Join(home, ".folio")
	}
}
