package logger

import (
	"strings"

	"github.com/machinefabric/managers-go/config"
	"github.com/pkg/errors"
)

// Factory creates logger instances based on the configuration.
func Factory(cfg config.Logger) (Logger, error) {
	if !cfg.Enabled {
		return NewNoOpLogger(), nil
	}

	switch strings.ToLower(cfg.Environment) {
	case "production", "development":
		return NewZapLogger(cfg)
	default:
		return nil, errors.Errorf("unsupported environment for logger: %q", cfg.Environment)
	}
}
