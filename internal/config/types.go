package config

// Config is the full cvue settings document.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Hosts   []string      `yaml:"hosts"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

// CatalogConfig locates the catalog file and controls parse failures.
type CatalogConfig struct {
	Path string `yaml:"path"`
	// Strict turns an unreadable catalog into an error instead of an empty catalog.
	Strict bool `yaml:"strict"`
}

// AuthConfig names where a clone token comes from when --token is absent.
type AuthConfig struct {
	TokenEnv string `yaml:"token_env"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}
