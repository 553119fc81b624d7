package ledger

import (
	"context"

	"revqr_backend/internal/model"
)

// RecordTransaction добавляет неизменяемую запись в журнал.
// Для списания сначала считается текущий баланс: уход в минус запрещен.
// Проверка и вставка выполняются под блокировкой аккаунта в одной
// транзакции, поэтому параллельные списания не могут переплести
// свои "проверил" и "записал".
func (s *serv) RecordTransaction(ctx context.Context, userID int64, amount int, subtype, description string, metadata map[string]any) (*model.Transaction, error) {
	// Нулевая сумма не имеет смысла в журнале
	if amount == 0 {
		return nil, model.ErrInvalidAmount
	}

	// Занимаем критическую секцию аккаунта
	release, err := s.locks.Acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	trx := &model.Transaction{
		UserID:      userID,
		Amount:      amount,
		Category:    model.CategoryFor(amount),
		Subtype:     subtype,
		Description: description,
		Metadata:    metadata,
	}

	// Начало транзакции, где выполняется проверка и вставка
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if amount < 0 {
			balance, err := s.repo.Balance(txCtx, userID)
			if err != nil {
				return err
			}
			if balance+amount < 0 {
				return model.ErrInsufficientFunds
			}
		}

		return s.repo.Insert(txCtx, trx)
	})
	if err != nil {
		return nil, err
	}

	return trx, nil
}
