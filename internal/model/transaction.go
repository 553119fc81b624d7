package model

import "time"

// Категории транзакций. Знак суммы всегда согласован с категорией:
// earning > 0, spending < 0.
const (
	CategoryEarning  = "earning"
	CategorySpending = "spending"
)

// Подтипы транзакций ядра. Внешние коллабораторы могут писать свои.
const (
	SubtypeWheelPrize   = "spin_wheel_prize"
	SubtypeSlotBet      = "slot_bet"
	SubtypeSlotPayout   = "slot_payout"
	SubtypePackPurchase = "pack_purchase"
	SubtypeAdjustment   = "adjustment"
)

// Transaction - неизменяемая запись журнала монет.
// Записи только добавляются, никогда не обновляются и не удаляются.
type Transaction struct {
	ID          int64
	UserID      int64
	Amount      int // знаковое целое, не ноль
	Category    string
	Subtype     string
	Description string
	Metadata    map[string]any
	CreatedAt   time.Time
}

// CategoryFor возвращает категорию по знаку суммы
func CategoryFor(amount int) string {
	if amount < 0 {
		return CategorySpending
	}
	return CategoryEarning
}
