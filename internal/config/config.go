package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// AMQP (optional; empty URL disables event publication)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// CSV export
	ExportDir string

	// Audit worker
	AuditLogPath string

	// Demo dataset seeded at startup
	SeedDemo bool
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8081"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "tracker"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "transaction_events"),

		ExportDir: getEnv("EXPORT_DIR", "."),

		AuditLogPath: getEnv("AUDIT_LOG_PATH", "./data/audit.log"),

		SeedDemo: getEnvBool("SEED_DEMO", true),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Validate export directory
	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	} else if _, err := os.Stat(c.ExportDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.ExportDir, 0755); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create export directory '%s': %v", c.ExportDir, err))
		}
	}

	// Validate audit log path
	if c.AuditLogPath != "" {
		dir := filepath.Dir(c.AuditLogPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create audit log directory '%s': %v", dir, err))
				}
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
