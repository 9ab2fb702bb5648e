package cmd

import (
	"github.com/machinefabric/managers-go"
	"github.com/machinefabric/managers-go/config"
	"github.com/machinefabric/managers-go/logger"
)

// contextOptions converts a validated config into managers context options
func contextOptions(cfg *config.Config, log logger.Logger) ([]managers.Option, error) {
	mode, err := managers.ParseCounterMode(cfg.Factory.Counter)
	if err != nil {
		return nil, err
	}
	policy, err := managers.ParseFailurePolicy(cfg.Manager4.FailurePolicy)
	if err != nil {
		return nil, err
	}
	return []managers.Option{
		managers.WithCounterMode(mode),
		managers.WithFailurePolicy(policy),
		managers.WithLogger(log),
		managers.WithFactoryOptions(
			managers.WithReadyAfter(cfg.Factory.ReadyAfter),
			managers.WithResourceValue(cfg.Factory.ResourceValue),
		),
	}, nil
}
