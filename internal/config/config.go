package config

import (
	"os"
	"strconv"

	"inflammation/internal/errors"
)

// Report formats accepted by REPORT_FORMAT
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Report    ReportConfig
	Generator GeneratorConfig
	Log       LogConfig
}

// DataConfig holds input file settings
type DataConfig struct {
	File string
}

// ReportConfig holds output settings
type ReportConfig struct {
	Format string
}

// GeneratorConfig holds synthetic data settings
type GeneratorConfig struct {
	Patients int
	Days     int
	Seed     int64
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data:      *loadDataConfig(),
		Report:    *loadReportConfig(),
		Generator: *loadGeneratorConfig(),
		Log:       LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File: getEnvOrDefault("INFLAMMATION_DATA_FILE", ""),
	}
}

func loadReportConfig() *ReportConfig {
	return &ReportConfig{
		Format: getEnvOrDefault("REPORT_FORMAT", FormatText),
	}
}

func loadGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		Patients: getEnvIntOrDefault("GENERATOR_PATIENTS", 60),
		Days:     getEnvIntOrDefault("GENERATOR_DAYS", 40),
		Seed:     int64(getEnvIntOrDefault("GENERATOR_SEED", 42)),
	}
}

func validateConfig(config *Config) error {
	switch config.Report.Format {
	case FormatText, FormatMarkdown, FormatHTML:
	default:
		return errors.ConfigInvalid("REPORT_FORMAT must be one of text, markdown, html")
	}
	if config.Generator.Patients <= 0 || config.Generator.Days <= 0 {
		return errors.ConfigInvalid("GENERATOR_PATIENTS and GENERATOR_DAYS must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
