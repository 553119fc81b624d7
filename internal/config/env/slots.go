package env

import (
	"fmt"
	"os"

	"revqr_backend/internal/config"
	"revqr_backend/internal/model"

	"gopkg.in/yaml.v3"
)

type slotsYAML struct {
	Slots struct {
		WinProbability float64        `yaml:"win_probability"`
		PatternWeights map[string]int `yaml:"pattern_weights"`
		Payouts        map[string]map[string]int `yaml:"payouts"`
		WildLineBonus     int `yaml:"wild_line_bonus"`
		WildCornerBonus   int `yaml:"wild_corner_bonus"`
		JackpotMultiplier int `yaml:"jackpot_multiplier"`
		Symbols           []struct {
			ID     string `yaml:"id"`
			Rarity int    `yaml:"rarity"`
			Wild   bool   `yaml:"wild"`
		} `yaml:"symbols"`
	} `yaml:"slots"`
}

type slotsConfig struct {
	symbols           []model.SlotSymbol
	winProbability    float64
	patternWeights    map[string]int
	payouts           map[string]map[string]int
	wildLineBonus     int
	wildCornerBonus   int
	jackpotMultiplier int
}

// NewSlotsConfigFromYAML загружает и валидирует каталог символов слота
func NewSlotsConfigFromYAML(path string) (config.SlotsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slots config: %w", err)
	}

	var raw slotsYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse slots config: %w", err)
	}

	s := raw.Slots
	if len(s.Symbols) == 0 {
		return nil, model.ErrEmptyCatalog
	}
	if s.WinProbability < 0 || s.WinProbability > 1 {
		return nil, fmt.Errorf("win probability must be within [0, 1]")
	}

	symbols := make([]model.SlotSymbol, 0, len(s.Symbols))
	seen := make(map[string]bool, len(s.Symbols))
	rarities := make(map[int]bool)
	for _, sym := range s.Symbols {
		if sym.ID == "" {
			return nil, fmt.Errorf("slot symbol without id")
		}
		if seen[sym.ID] {
			return nil, fmt.Errorf("duplicate slot symbol %q", sym.ID)
		}
		seen[sym.ID] = true
		if !sym.Wild {
			rarities[sym.Rarity] = true
		}
		symbols = append(symbols, model.SlotSymbol{
			ID:     sym.ID,
			Rarity: sym.Rarity,
			IsWild: sym.Wild,
		})
	}
	// С единственным рангом редкости любая линия давала бы rarity-выигрыш
	// и проигрышное поле стало бы невозможным
	if len(rarities) < 2 {
		return nil, fmt.Errorf("slots catalog needs non-wild symbols of at least two rarity tiers")
	}

	for _, w := range s.PatternWeights {
		if w <= 0 {
			return nil, model.ErrInvalidWeight
		}
	}

	return &slotsConfig{
		symbols:           symbols,
		winProbability:    s.WinProbability,
		patternWeights:    s.PatternWeights,
		payouts:           s.Payouts,
		wildLineBonus:     s.WildLineBonus,
		wildCornerBonus:   s.WildCornerBonus,
		jackpotMultiplier: s.JackpotMultiplier,
	}, nil
}

func (cfg *slotsConfig) Symbols() []model.SlotSymbol {
	return cfg.symbols
}

func (cfg *slotsConfig) WinProbability() float64 {
	return cfg.winProbability
}

func (cfg *slotsConfig) PatternWeights() map[string]int {
	return cfg.patternWeights
}

func (cfg *slotsConfig) PayoutMultiplier(lineKind, matchKind string) int {
	if kinds, ok := cfg.payouts[lineKind]; ok {
		return kinds[matchKind]
	}
	return 0
}

func (cfg *slotsConfig) WildLineBonus() int {
	return cfg.wildLineBonus
}

func (cfg *slotsConfig) WildCornerBonus() int {
	return cfg.wildCornerBonus
}

func (cfg *slotsConfig) JackpotMultiplier() int {
	return cfg.jackpotMultiplier
}
