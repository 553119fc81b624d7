package repository

import (
	"context"
	"time"

	"revqr_backend/internal/model"

	"github.com/google/uuid"
)

// LedgerRepository - журнал монетных транзакций. Только вставка и чтение,
// записи никогда не меняются.
type LedgerRepository interface {
	// Balance - сумма всех транзакций аккаунта, 0 для пустой истории
	Balance(ctx context.Context, userID int64) (int, error)
	// Insert добавляет запись и проставляет ID и CreatedAt
	Insert(ctx context.Context, trx *model.Transaction) error
	// List - страница истории, новые записи первыми.
	// beforeID = 0 означает "с самого свежего".
	List(ctx context.Context, userID int64, limit int, beforeID int64) ([]model.Transaction, error)
}

// AllowanceRepository - дневные счетчики игр
type AllowanceRepository interface {
	// Get возвращает nil без ошибки, если записи за день еще нет
	Get(ctx context.Context, userID int64, day time.Time) (*model.SpinAllowance, error)
	// Create создает запись дня, ничего не делает если она уже есть
	Create(ctx context.Context, allowance *model.SpinAllowance) error
	IncrementConsumed(ctx context.Context, userID int64, day time.Time) error
}

// PackRepository - пакеты бонусных спинов
type PackRepository interface {
	Create(ctx context.Context, pack *model.SpinPack) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.SpinPack, error)
	// ListActive - неистекшие пакеты с остатком спинов,
	// отсортированные по возрастанию expires_at
	ListActive(ctx context.Context, userID int64, now time.Time) ([]model.SpinPack, error)
	DecrementSpins(ctx context.Context, id uuid.UUID) error
	AddSpins(ctx context.Context, id uuid.UUID, spins int) error
}
