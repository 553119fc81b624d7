package env

import (
	"fmt"
	"os"

	"revqr_backend/internal/config"
	"revqr_backend/internal/model"

	"gopkg.in/yaml.v3"
)

// Сырые структуры для разбора config.yaml
type wheelYAML struct {
	Wheel struct {
		PointerOffset    float64 `yaml:"pointer_offset"`
		MinFullRotations int     `yaml:"min_full_rotations"`
		MaxFullRotations int     `yaml:"max_full_rotations"`
		Prizes           []struct {
			Name   string `yaml:"name"`
			Weight int    `yaml:"weight"`
			Payout int    `yaml:"payout"`
		} `yaml:"prizes"`
	} `yaml:"wheel"`
}

type wheelConfig struct {
	prizes        []model.WheelPrize
	pointerOffset float64
	minRotations  int
	maxRotations  int
}

// NewWheelConfigFromYAML загружает и валидирует каталог колеса.
// Пустой каталог и неположительные веса отбрасываются здесь,
// чтобы во время игры такие ошибки были уже невозможны.
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wheel config: %w", err)
	}

	var raw wheelYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse wheel config: %w", err)
	}

	if len(raw.Wheel.Prizes) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	prizes := make([]model.WheelPrize, 0, len(raw.Wheel.Prizes))
	for i, p := range raw.Wheel.Prizes {
		if p.Weight <= 0 {
			return nil, fmt.Errorf("prize %q: %w", p.Name, model.ErrInvalidWeight)
		}
		prizes = append(prizes, model.WheelPrize{
			Index:  i,
			Name:   p.Name,
			Weight: p.Weight,
			Payout: p.Payout,
		})
	}

	minRot := raw.Wheel.MinFullRotations
	maxRot := raw.Wheel.MaxFullRotations
	if minRot <= 0 {
		minRot = 8
	}
	if maxRot < minRot {
		maxRot = minRot
	}

	return &wheelConfig{
		prizes:        prizes,
		pointerOffset: raw.Wheel.PointerOffset,
		minRotations:  minRot,
		maxRotations:  maxRot,
	}, nil
}

func (cfg *wheelConfig) Prizes() []model.WheelPrize {
	return cfg.prizes
}

func (cfg *wheelConfig) PointerOffset() float64 {
	return cfg.pointerOffset
}

func (cfg *wheelConfig) MinFullRotations() int {
	return cfg.minRotations
}

func (cfg *wheelConfig) MaxFullRotations() int {
	return cfg.maxRotations
}
