package allowance

import (
	"context"
	"time"

	"revqr_backend/internal/model"
)

// ConsumeSpin списывает одну игру. Сначала тратится дневной лимит,
// после его исчерпания - бонусные пакеты, начиная с того, что истекает
// раньше всех. Если играть не на что - model.ErrNoSpinsRemaining.
//
// Вызывается только под критической секцией аккаунта (ее держит игровой
// сервис) и присоединяется к объемлющей транзакции, поэтому "проверил"
// и "списал" не перемежаются с параллельными играми.
func (s *serv) ConsumeSpin(ctx context.Context, userID int64, now time.Time) error {
	day := dayOf(now)

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		allowance, err := s.repo.Get(txCtx, userID, day)
		if err != nil {
			return err
		}

		// Запись дня создается лениво при первой игре
		if allowance == nil {
			allowance = &model.SpinAllowance{
				UserID:        userID,
				Date:          day,
				BaseAllowance: s.cfg.DailyBase(),
				ConsumedCount: 0,
			}
			if err := s.repo.Create(txCtx, allowance); err != nil {
				return err
			}
		}

		// Дневной лимит тратится первым
		if allowance.ConsumedCount < allowance.BaseAllowance {
			return s.repo.IncrementConsumed(txCtx, userID, day)
		}

		// База исчерпана - ищем активный пакет с ближайшим истечением
		packs, err := s.packRepo.ListActive(txCtx, userID, now)
		if err != nil {
			return err
		}
		if len(packs) == 0 {
			return model.ErrNoSpinsRemaining
		}

		if err := s.packRepo.DecrementSpins(txCtx, packs[0].ID); err != nil {
			return err
		}

		return s.repo.IncrementConsumed(txCtx, userID, day)
	})
}
