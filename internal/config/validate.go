package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateDetect(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json", "plain":
	default:
		return fmt.Errorf("output.format: unsupported value %q (want table, json, or plain)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q (want auto, always, or never)", c.Output.Color)
	}
	return nil
}

func (c *Config) validateDetect() error {
	if c.Detect.MinConfidence < 0 || c.Detect.MinConfidence > 1 {
		return errors.New("detect.min_confidence must be between 0 and 1")
	}
	return nil
}
