package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/onedsix/internal"
)

const (
	EnvFaceType  = "ONEDSIX_FACE_TYPE"
	EnvComplex   = "ONEDSIX_COMPLEX"
	EnvSeed      = "ONEDSIX_SEED"
	EnvVerbosity = "ONEDSIX_VERBOSITY"

	DefaultFaceType = "uint32"
)

// Config holds all configuration for the CLI
type Config struct {
	Roll    RollConfig
	Logging LoggingConfig
}

// RollConfig controls how dice expressions are rolled and printed
type RollConfig struct {
	FaceType string
	Complex  bool   // print every die instead of the total
	Seed     uint64 // 0 picks a random seed
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Verbosity int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Roll: RollConfig{
			FaceType: strings.TrimSpace(getEnvOrDefault(EnvFaceType, DefaultFaceType)),
		},
	}

	var err error
	if cfg.Roll.Complex, err = getEnvAsBoolOrDefault(EnvComplex, false); err != nil {
		return nil, err
	}
	if cfg.Roll.Seed, err = getEnvAsUint64OrDefault(EnvSeed, 0); err != nil {
		return nil, err
	}
	if cfg.Logging.Verbosity, err = getEnvAsIntOrDefault(EnvVerbosity, 0); err != nil {
		return nil, err
	}

	if cfg.Roll.FaceType == "" {
		return nil, internal.NewMissingParamError(EnvFaceType)
	}
	if cfg.Logging.Verbosity < 0 {
		return nil, internal.NewInvalidParamError(EnvVerbosity, os.Getenv(EnvVerbosity), "must not be negative")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, internal.NewInvalidParamError(key, value, "must be an integer")
	}
	return intValue, nil
}

func getEnvAsUint64OrDefault(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, internal.NewInvalidParamError(key, value, "must be an unsigned integer")
	}
	return uintValue, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, internal.NewInvalidParamError(key, value, "must be a boolean")
	}
	return boolValue, nil
}
