package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"revqr_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewWheelConfigFromYAML(t *testing.T) {
	path := writeYAML(t, `
wheel:
  pointer_offset: 90
  min_full_rotations: 8
  max_full_rotations: 12
  prizes:
    - name: "5 QR Coins"
      weight: 5
      payout: 5
    - name: "Jackpot"
      weight: 1
      payout: 1000
`)

	cfg, err := NewWheelConfigFromYAML(path)
	require.NoError(t, err)

	prizes := cfg.Prizes()
	require.Len(t, prizes, 2)
	assert.Equal(t, 0, prizes[0].Index)
	assert.Equal(t, "5 QR Coins", prizes[0].Name)
	assert.Equal(t, 5, prizes[0].Weight)
	assert.Equal(t, 1000, prizes[1].Payout)
	assert.Equal(t, 90.0, cfg.PointerOffset())
	assert.Equal(t, 8, cfg.MinFullRotations())
	assert.Equal(t, 12, cfg.MaxFullRotations())
}

func TestNewWheelConfigFromYAML_EmptyCatalog(t *testing.T) {
	path := writeYAML(t, `
wheel:
  pointer_offset: 90
  prizes: []
`)

	_, err := NewWheelConfigFromYAML(path)
	assert.ErrorIs(t, err, model.ErrEmptyCatalog)
}

func TestNewWheelConfigFromYAML_NonPositiveWeight(t *testing.T) {
	path := writeYAML(t, `
wheel:
  prizes:
    - name: "ok"
      weight: 3
      payout: 1
    - name: "broken"
      weight: 0
      payout: 1
`)

	_, err := NewWheelConfigFromYAML(path)
	assert.ErrorIs(t, err, model.ErrInvalidWeight)
}

func TestNewWheelConfigFromYAML_RotationDefaults(t *testing.T) {
	path := writeYAML(t, `
wheel:
  prizes:
    - name: "ok"
      weight: 1
      payout: 1
`)

	cfg, err := NewWheelConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MinFullRotations())
	assert.GreaterOrEqual(t, cfg.MaxFullRotations(), cfg.MinFullRotations())
}

func TestNewWheelConfigFromYAML_MissingFile(t *testing.T) {
	_, err := NewWheelConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

const validSlotsYAML = `
slots:
  win_probability: 0.25
  pattern_weights:
    straight_line: 40
    rarity_line: 20
  payouts:
    straight:
      exact: 10
      rarity: 4
    diagonal:
      exact: 15
      rarity: 6
  wild_line_bonus: 2
  wild_corner_bonus: 3
  jackpot_multiplier: 5
  symbols:
    - id: cherry
      rarity: 1
    - id: lemon
      rarity: 1
    - id: bell
      rarity: 2
    - id: wild
      rarity: 4
      wild: true
`

func TestNewSlotsConfigFromYAML(t *testing.T) {
	cfg, err := NewSlotsConfigFromYAML(writeYAML(t, validSlotsYAML))
	require.NoError(t, err)

	symbols := cfg.Symbols()
	require.Len(t, symbols, 4)
	assert.Equal(t, "cherry", symbols[0].ID)
	assert.True(t, symbols[3].IsWild)

	assert.Equal(t, 0.25, cfg.WinProbability())
	assert.Equal(t, 10, cfg.PayoutMultiplier(model.LineKindStraight, model.MatchExact))
	assert.Equal(t, 6, cfg.PayoutMultiplier(model.LineKindDiagonal, model.MatchRarity))
	assert.Equal(t, 2, cfg.WildLineBonus())
	assert.Equal(t, 3, cfg.WildCornerBonus())
	assert.Equal(t, 5, cfg.JackpotMultiplier())
	assert.Equal(t, 40, cfg.PatternWeights()["straight_line"])
}

func TestNewSlotsConfigFromYAML_DuplicateSymbol(t *testing.T) {
	path := writeYAML(t, `
slots:
  win_probability: 0.5
  symbols:
    - id: cherry
      rarity: 1
    - id: cherry
      rarity: 2
`)

	_, err := NewSlotsConfigFromYAML(path)
	assert.Error(t, err)
}

func TestNewSlotsConfigFromYAML_SingleRarityTier(t *testing.T) {
	path := writeYAML(t, `
slots:
  win_probability: 0.5
  symbols:
    - id: cherry
      rarity: 1
    - id: lemon
      rarity: 1
    - id: wild
      rarity: 4
      wild: true
`)

	_, err := NewSlotsConfigFromYAML(path)
	assert.Error(t, err)
}

func TestNewSlotsConfigFromYAML_WinProbabilityOutOfRange(t *testing.T) {
	path := writeYAML(t, `
slots:
  win_probability: 1.5
  symbols:
    - id: cherry
      rarity: 1
    - id: bell
      rarity: 2
`)

	_, err := NewSlotsConfigFromYAML(path)
	assert.Error(t, err)
}

func TestNewSlotsConfigFromYAML_NonPositivePatternWeight(t *testing.T) {
	path := writeYAML(t, `
slots:
  win_probability: 0.5
  pattern_weights:
    straight_line: 0
  symbols:
    - id: cherry
      rarity: 1
    - id: bell
      rarity: 2
`)

	_, err := NewSlotsConfigFromYAML(path)
	assert.ErrorIs(t, err, model.ErrInvalidWeight)
}

func TestNewAllowanceConfigFromYAML(t *testing.T) {
	cfg, err := NewAllowanceConfigFromYAML(writeYAML(t, `
allowance:
  daily_base: 5
`))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DailyBase())
}

func TestNewAllowanceConfigFromYAML_Negative(t *testing.T) {
	_, err := NewAllowanceConfigFromYAML(writeYAML(t, `
allowance:
  daily_base: -1
`))
	assert.Error(t, err)
}

func TestNewLockConfig_Default(t *testing.T) {
	t.Setenv(lockWaitEnvName, "")

	cfg, err := NewLockConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultLockWait, cfg.WaitTimeout())
}

func TestNewLockConfig_Parsed(t *testing.T) {
	t.Setenv(lockWaitEnvName, "750ms")

	cfg, err := NewLockConfig()
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.WaitTimeout())
}

func TestNewLockConfig_Invalid(t *testing.T) {
	t.Setenv(lockWaitEnvName, "soon")
	_, err := NewLockConfig()
	assert.Error(t, err)

	t.Setenv(lockWaitEnvName, "-1s")
	_, err = NewLockConfig()
	assert.Error(t, err)
}
