package env

import (
	"fmt"
	"os"
	"time"

	"revqr_backend/internal/config"
)

const (
	lockWaitEnvName = "ACCOUNT_LOCK_WAIT"
	// Ожидание по умолчанию, если переменная не задана
	defaultLockWait = 2 * time.Second
)

type lockConfig struct {
	wait time.Duration
}

func NewLockConfig() (config.LockConfig, error) {
	raw := os.Getenv(lockWaitEnvName)
	if len(raw) == 0 {
		return &lockConfig{wait: defaultLockWait}, nil
	}

	wait, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid account lock wait: %w", err)
	}
	if wait <= 0 {
		return nil, fmt.Errorf("account lock wait must be positive")
	}

	return &lockConfig{wait: wait}, nil
}

func (cfg *lockConfig) WaitTimeout() time.Duration {
	return cfg.wait
}
