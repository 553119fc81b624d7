package config

import (
	"time"

	"revqr_backend/internal/model"

	"github.com/joho/godotenv"
)

// Load подхватывает переменные окружения из .env
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// WheelConfig - каталог колеса призов. Валидируется один раз при загрузке,
// на момент игры плохих каталогов уже не бывает.
type WheelConfig interface {
	Prizes() []model.WheelPrize
	PointerOffset() float64
	MinFullRotations() int
	MaxFullRotations() int
}

// SlotsConfig - каталог символов и таблицы выплат слота
type SlotsConfig interface {
	Symbols() []model.SlotSymbol
	WinProbability() float64
	PatternWeights() map[string]int
	// PayoutMultiplier - базовый множитель ставки по виду линии
	// (straight|diagonal) и виду совпадения (exact|rarity)
	PayoutMultiplier(lineKind, matchKind string) int
	WildLineBonus() int   // x ставки за вайлд на прямой выигрышной линии
	WildCornerBonus() int // x ставки за вайлд в углу выигрышной диагонали
	JackpotMultiplier() int
}

// AllowanceConfig - настройки дневного лимита игр
type AllowanceConfig interface {
	DailyBase() int
}

type PGConfig interface {
	DSN() string
}

// LockConfig - ограничение ожидания критической секции аккаунта
type LockConfig interface {
	WaitTimeout() time.Duration
}
