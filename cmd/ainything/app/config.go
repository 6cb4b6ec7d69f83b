package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/ainything/pkg/constants"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "AINYTHING"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog source. CatalogURL wins over CatalogPath; with neither set the
	// embedded catalog is used.
	CatalogPath string
	CatalogURL  string
	LoadTimeout time.Duration

	// Browsing defaults
	BaseURL      string
	DefaultSort  string
	GlamourStyle string

	// Logging configuration
	LogLevel      string
	LogFormat     string
	LogOutput     string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (AINYTHING_*)
// 3. .env files
// 4. Config file (~/.ainything.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), "")
}

// LoadConfigFile loads configuration using an explicit config file.
func LoadConfigFile(path string) (*Config, error) {
	return loadConfig(viper.New(), path)
}

func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	// .env files are loaded before env binding
	loadEnvFiles()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)
		// A missing default config file is not an error
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		CatalogPath: v.GetString("catalog_path"),
		CatalogURL:  v.GetString("catalog_url"),
		LoadTimeout: v.GetDuration("load_timeout"),

		BaseURL:      v.GetString("base_url"),
		DefaultSort:  v.GetString("default_sort"),
		GlamourStyle: v.GetString("glamour_style"),

		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
		LogOutput:     v.GetString("log_output"),
		LogMaxSizeMB:  v.GetInt("log_max_size_mb"),
		LogMaxBackups: v.GetInt("log_max_backups"),
		LogMaxAgeDays: v.GetInt("log_max_age_days"),
	}

	if config.LoadTimeout <= 0 {
		config.LoadTimeout = constants.DefaultLoadTimeout
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("load_timeout", constants.DefaultLoadTimeout)
	v.SetDefault("base_url", constants.DefaultBaseURL)
	v.SetDefault("glamour_style", constants.DefaultGlamourStyle)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
	v.SetDefault("log_max_size_mb", constants.LogRotationSizeMB)
	v.SetDefault("log_max_backups", constants.LogRotationBackups)
	v.SetDefault("log_max_age_days", constants.LogRotationAgeDays)
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so that flag values take
// precedence over the config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	if noColor {
		c.NoColor = true
	}
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local does not override variables set by .env or the shell.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
