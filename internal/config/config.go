// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-wizard/internal/schemas"
	"github.com/spf13/viper"
)

// Config file and environment naming
const (
	ConfigName = "resume-wizard"
	EnvPrefix  = "RESUME_WIZARD"
)

// Configuration keys
const (
	KeyOutputDir     = "output_dir"
	KeyFormat        = "format"
	KeyChromePath    = "chrome_path"
	KeyRenderTimeout = "render_timeout"
	KeyScale         = "scale"
	KeyVerbose       = "verbose"
	KeySchemaPath    = "schema_path"
)

// Defaults
const (
	DefaultOutputDir     = "."
	DefaultFormat        = "html"
	DefaultRenderTimeout = 60 * time.Second
	DefaultScale         = 2.0
)

var knownFormats = []string{"html", "pdf", "word", "docx"}

// Config holds the settings shared by every command.
// Values come from the config file, RESUME_WIZARD_* environment variables and flags.
type Config struct {
	OutputDir     string        // Directory exported files are written to
	Format        string        // Export format used when --format is not given
	ChromePath    string        // Chrome/Chromium executable; empty lets chromedp find one
	RenderTimeout time.Duration // Upper bound for one rasterization
	Scale         float64       // Device scale factor for PDF rasterization
	Verbose       bool          // Print detailed debug information
	SchemaPath    string        // Absolute path of a JSON Schema replacing the built-in one; empty keeps the built-in
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyChromePath, "")
	v.SetDefault(KeyRenderTimeout, DefaultRenderTimeout)
	v.SetDefault(KeyScale, DefaultScale)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeySchemaPath, "")
}

// Configure points v at the config file and environment. An empty cfgFile searches
// ./resume-wizard.yaml and ~/.config/resume-wizard/resume-wizard.yaml.
func Configure(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	SetDefaults(v)
}

// ReadConfig configures v and reads the config file. It returns the file used, or ""
// when no file was found on the search path. A file named explicitly must exist.
func ReadConfig(v *viper.Viper, cfgFile string) (string, error) {
	Configure(v, cfgFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		name := cfgFile
		if name == "" {
			name = v.ConfigFileUsed()
		}
		return "", fmt.Errorf("failed to read config file %s: %w", name, err)
	}
	return v.ConfigFileUsed(), nil
}

// Load reads a Config out of v. CHROME_PATH is honoured when chrome_path is unset, and
// schema_path is resolved against the working directory and its two parents.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		OutputDir:     v.GetString(KeyOutputDir),
		Format:        strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		ChromePath:    v.GetString(KeyChromePath),
		RenderTimeout: v.GetDuration(KeyRenderTimeout),
		Scale:         v.GetFloat64(KeyScale),
		Verbose:       v.GetBool(KeyVerbose),
	}
	if cfg.ChromePath == "" {
		cfg.ChromePath = os.Getenv("CHROME_PATH")
	}

	if raw := v.GetString(KeySchemaPath); raw != "" {
		cfg.SchemaPath = schemas.ResolveSchemaPath(raw)
		if cfg.SchemaPath == "" {
			return nil, fmt.Errorf("config error: schema file not found: %s", raw)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.Format != "" && !contains(knownFormats, c.Format) {
		return fmt.Errorf("config error: unknown format %q (want html, pdf or word)", c.Format)
	}
	if c.RenderTimeout <= 0 {
		return fmt.Errorf("config error: 'render_timeout' must be positive")
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config error: 'scale' must be positive")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome executable not found: %s", c.ChromePath)
		}
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
