package config

// Config provides read-only access to application configuration.
// The app layer depends on this interface, not on where values came from.
type Config interface {
	Home() string      // Settings directory (HELLO_HOME)
	LogLevel() string  // Minimum log level written to stderr
	LogFormat() string // "console" or "json"

	// Metadata
	ConfigSource() string // Source of configuration: "yaml" or "default"
	SettingPath() string  // Path to setting.yaml if loaded from file
}

// AppConfig is the concrete implementation of Config.
type AppConfig struct {
	home      string
	logLevel  string
	logFormat string

	configSource string
	settingPath  string
}

func (c *AppConfig) Home() string {
	return c.home
}

func (c *AppConfig) LogLevel() string {
	return c.logLevel
}

func (c *AppConfig) LogFormat() string {
	return c.logFormat
}

func (c *AppConfig) ConfigSource() string {
	return c.configSource
}

func (c *AppConfig) SettingPath() string {
	return c.settingPath
}

// NewAppConfig creates an AppConfig with all values set.
func NewAppConfig(home, logLevel, logFormat, configSource, settingPath string) *AppConfig {
	return &AppConfig{
		home:         home,
		logLevel:     logLevel,
		logFormat:    logFormat,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

// Default returns the configuration used when no settings file exists.
func Default(home string) *AppConfig {
	return NewAppConfig(home, "warn", "console", "default", "")
}
