package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// IsDevelopment reports whether the server runs outside production. It
// selects the human readable logger and enables loading a local .env file.
func (c Config) IsDevelopment() bool {
	return !strings.EqualFold(c.Environment, EnvProduction)
}

// LoadDotEnv loads a local .env file into the process environment unless the
// environment variable marks a production deployment, where the platform
// provides the variables itself.
func LoadDotEnv() error {
	if strings.EqualFold(os.Getenv(envPrefix+"ENVIRONMENT"), EnvProduction) {
		return nil
	}
	return godotenv.Load()
}
