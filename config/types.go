package config

// AssetsConfig locates split definitions and the category catalog.
// An empty Dir selects the assets embedded in the binary.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Splits     string `yaml:"splits" validate:"required"`
	Directory  string `yaml:"directory" validate:"required"`
	Categories string `yaml:"categories" validate:"required"`
}

// GenerateConfig contains defaults for the generate command
type GenerateConfig struct {
	DefaultCategory string `yaml:"defaultCategory" validate:"required"`
	OutputDir       string `yaml:"outputDir" validate:"required"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Assets   AssetsConfig   `yaml:"assets"`
	Generate GenerateConfig `yaml:"generate"`
	Logging  LoggingConfig  `yaml:"logging"`
}
