package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the server cannot run without is
// present. S3 settings are deliberately optional: without a bucket the
// photo-upload endpoint is disabled and everything else still works.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"server port": cfg.ServerPort,
		"db host":     cfg.DBHost,
		"db port":     cfg.DBPort,
		"db user":     cfg.DBUser,
		"db password": cfg.DBPassword,
		"db name":     cfg.DBName,
		"jwt secret":  cfg.JWTSecret,
	}

	var errors []string
	for field, value := range required {
		if value == "" {
			errors = append(errors, ValidationError{Field: field, Message: "is not set"}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
