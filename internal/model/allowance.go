package model

import (
	"time"

	"github.com/google/uuid"
)

// SpinAllowance - счетчик игр аккаунта за календарный день.
// Создается лениво при первой игре дня, никогда не удаляется.
type SpinAllowance struct {
	UserID        int64
	Date          time.Time // календарный день (UTC, усеченный до суток)
	BaseAllowance int
	ConsumedCount int
}

// SpinPack - купленный пакет бонусных спинов, ограниченный по времени.
// Создается внешним потоком покупки, уменьшается только при игре.
// После истечения срока остается в истории, но перестает учитываться.
type SpinPack struct {
	ID             uuid.UUID
	UserID         int64
	SpinsRemaining int
	GrantedAt      time.Time
	ExpiresAt      time.Time
}

// Active сообщает, дает ли пакет спины в момент now
func (p SpinPack) Active(now time.Time) bool {
	return p.SpinsRemaining > 0 && !p.ExpiresAt.Before(now)
}

// AllowanceStatus - сводка по оставшимся играм аккаунта
type AllowanceStatus struct {
	BaseRemaining  int        // остаток дневного лимита
	HasPacks       bool       // есть активные пакеты
	BonusRemaining int        // сумма спинов по активным пакетам
	PackCount      int        // количество активных пакетов
	EarliestExpiry *time.Time // ближайшее истечение среди активных пакетов
}

// TotalRemaining - сколько всего игр доступно прямо сейчас
func (s AllowanceStatus) TotalRemaining() int {
	return s.BaseRemaining + s.BonusRemaining
}
