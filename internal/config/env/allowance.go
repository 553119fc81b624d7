package env

import (
	"fmt"
	"os"

	"revqr_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type allowanceYAML struct {
	Allowance struct {
		DailyBase int `yaml:"daily_base"`
	} `yaml:"allowance"`
}

type allowanceConfig struct {
	dailyBase int
}

// NewAllowanceConfigFromYAML загружает настройки дневного лимита
func NewAllowanceConfigFromYAML(path string) (config.AllowanceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read allowance config: %w", err)
	}

	var raw allowanceYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse allowance config: %w", err)
	}

	if raw.Allowance.DailyBase < 0 {
		return nil, fmt.Errorf("daily base allowance must not be negative")
	}

	return &allowanceConfig{dailyBase: raw.Allowance.DailyBase}, nil
}

func (cfg *allowanceConfig) DailyBase() int {
	return cfg.dailyBase
}
