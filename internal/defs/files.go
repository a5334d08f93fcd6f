package defs

// Common file names used across the project.
const (
	// TemplatesYAML is the catalog file, resolved relative to the working directory.
	TemplatesYAML = "templates.yaml"

	// LockSuffix is appended to the catalog path to form the mutation lock file.
	LockSuffix = ".lock"

	// ConfigDirName is the directory under the user config dir holding settings.
	ConfigDirName = "cvue"

	// ConfigYAML is the optional settings file inside ConfigDirName.
	ConfigYAML = "config.yaml"

	// DotEnv is the environment file loaded from the working directory.
	DotEnv = ".env"
)

// Environment variables read by cvue.
const (
	EnvConfig   = "CVUE_CONFIG"
	EnvCatalog  = "CVUE_CATALOG"
	EnvHosts    = "CVUE_HOSTS"
	EnvTokenEnv = "CVUE_TOKEN_ENV"
	EnvLogLevel = "CVUE_LOG_LEVEL"
	EnvNoColor  = "CVUE_NO_COLOR"
	EnvStrict   = "CVUE_STRICT"
)
