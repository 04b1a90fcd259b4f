package sim

import "go.uber.org/zap"

// NewDuelLogger builds the structured logger used to trace the first
// simulated duel of a batch. Callers should Sync on shutdown.
func NewDuelLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
