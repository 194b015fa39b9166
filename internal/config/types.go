package config

// CurrentVersion is the config schema version written by default.
const CurrentVersion = "1.0"

// Config is the countrydash application configuration document. Dataset
// names a JSON or YAML country file; empty selects the embedded dataset.
type Config struct {
	Version string  `yaml:"version" validate:"required,semver"`
	Dataset string  `yaml:"dataset,omitempty" validate:"omitempty,dataset_path"`
	Theme   string  `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	View    string  `yaml:"view,omitempty" validate:"omitempty,oneof=grid table"`
	Region  string  `yaml:"region,omitempty" validate:"omitempty,max=64"`
	Logging Logging `yaml:"logging,omitempty"`
}

// Logging configures the application logger. File receives dashboard logs
// because the terminal is owned by the UI while it runs.
type Logging struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	File          string `yaml:"file,omitempty"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Theme:   "light",
		View:    "grid",
		Logging: Logging{Level: "info"},
	}
}

// ApplyDefaults fills unset optional fields from Default.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.View == "" {
		c.View = def.View
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}
