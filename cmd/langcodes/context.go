package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"langcodes/internal/config"
	"langcodes/internal/logging"
)

type globalFlags struct {
	config   string
	logLevel string
	json     bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
	logger     *slog.Logger
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads configuration once and builds the invocation logger,
// which writes to the command's stderr.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
		}

		logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			c.configErr = fmt.Errorf("init logging: %w", err)
			return
		}
		sessionCtx := logging.WithSessionID(cmd.Context(), uuid.NewString())
		c.logger = logging.NewComponentLogger(logging.WithContext(sessionCtx, logger), "cli")
		c.logger.Debug("configuration loaded",
			logging.String("config_path", path),
			logging.Bool("config_exists", exists),
		)
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	if c.config == nil {
		cfg := config.Default()
		return &cfg
	}
	return c.config
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// outputFormat resolves the effective format; --json wins over config.
func (c *commandContext) outputFormat() string {
	if c.flags.json {
		return "json"
	}
	return c.configValue().Output.Format
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
