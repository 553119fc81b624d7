package slots

import (
	"context"
	"errors"
	"time"

	"revqr_backend/internal/model"
)

// Spin - полный спин слота: списание одной игры из лимита, списание
// ставки, генерация и оценка поля, начисление выигрыша. Все шаги -
// одна критическая секция аккаунта и одна транзакция; "игра списана,
// а выигрыш не начислен" невозможно по построению.
func (s *serv) Spin(ctx context.Context, userID int64, bet int) (*model.SlotSpinResult, error) {
	// Валидация ставки
	if bet <= 0 {
		return nil, errors.New("bet must be positive")
	}

	// Занимаем критическую секцию аккаунта
	release, err := s.locks.Acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now()

	var res *model.SlotSpinResult

	// Начало транзакции, где выполняется процесс спина
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Списываем одну игру из дневного лимита или пакета
		if err := s.allowanceServ.ConsumeSpin(txCtx, userID, now); err != nil {
			return err
		}

		// Проверяем баланс и списываем ставку
		balance, err := s.ledgerRepo.Balance(txCtx, userID)
		if err != nil {
			return err
		}
		if balance < bet {
			return model.ErrInsufficientFunds
		}

		debit := &model.Transaction{
			UserID:      userID,
			Amount:      -bet,
			Category:    model.CategorySpending,
			Subtype:     model.SubtypeSlotBet,
			Description: "slot machine bet",
		}
		if err := s.ledgerRepo.Insert(txCtx, debit); err != nil {
			return err
		}

		// Генерация поля и его независимая оценка
		board := s.GenerateBoard()
		wins, err := s.EvaluateBoard(board, bet)
		if err != nil {
			return err
		}

		total := 0
		for _, w := range wins {
			total += w.Payout
		}

		// Начисление выигрыша
		if total > 0 {
			credit := &model.Transaction{
				UserID:      userID,
				Amount:      total,
				Category:    model.CategoryEarning,
				Subtype:     model.SubtypeSlotPayout,
				Description: "slot machine payout",
				Metadata: map[string]any{
					"winning_lines": len(wins),
				},
			}
			if err := s.ledgerRepo.Insert(txCtx, credit); err != nil {
				return err
			}
		}

		balance, err = s.ledgerRepo.Balance(txCtx, userID)
		if err != nil {
			return err
		}

		status, err := s.allowanceServ.Status(txCtx, userID, now)
		if err != nil {
			return err
		}

		res = &model.SlotSpinResult{
			Board:       board,
			LineWins:    wins,
			TotalPayout: total,
			Balance:     balance,
			Allowance:   *status,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
