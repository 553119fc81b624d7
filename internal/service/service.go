package service

import (
	"context"
	"time"

	"revqr_backend/internal/model"

	"github.com/google/uuid"
)

// LedgerService - журнал монет и производный баланс.
// Баланс нигде не хранится отдельно, он всегда сумма транзакций.
type LedgerService interface {
	// GetBalance возвращает 0 для аккаунта без истории
	GetBalance(ctx context.Context, userID int64) (int, error)
	// RecordTransaction добавляет запись. Для отрицательной суммы проверка
	// баланса и вставка выполняются как одна операция на аккаунт.
	RecordTransaction(ctx context.Context, userID int64, amount int, subtype, description string, metadata map[string]any) (*model.Transaction, error)
	// History - страница истории, новые записи первыми. beforeID = 0 - с начала
	History(ctx context.Context, userID int64, limit int, beforeID int64) ([]model.Transaction, error)
}

// AllowanceService - дневной лимит игр и бонусные пакеты
type AllowanceService interface {
	CanPlay(ctx context.Context, userID int64, now time.Time) (bool, error)
	// ConsumeSpin списывает одну игру: сначала дневной лимит, затем пакеты
	// по возрастанию срока истечения. Вызывается игровыми сервисами внутри
	// критической секции аккаунта и присоединяется к их транзакции.
	ConsumeSpin(ctx context.Context, userID int64, now time.Time) error
	Status(ctx context.Context, userID int64, now time.Time) (*model.AllowanceStatus, error)
	// GrantPack создает пакет бонусных спинов (вызов внешнего потока покупки)
	GrantPack(ctx context.Context, userID int64, spins int, ttl time.Duration) (*model.SpinPack, error)
	// AddPackSpins пополняет существующий пакет
	AddPackSpins(ctx context.Context, packID uuid.UUID, spins int) error
}

// WheelService - колесо призов
type WheelService interface {
	Spin(ctx context.Context, userID int64) (*model.WheelSpinResult, error)
}

// SlotsService - слот 3x3
type SlotsService interface {
	Spin(ctx context.Context, userID int64, bet int) (*model.SlotSpinResult, error)
}
