package allowance

import (
	"context"
	"time"

	"revqr_backend/internal/model"
)

// Status - сводка по оставшимся играм: остаток дневного лимита
// плюс активные пакеты. Истекшие пакеты не учитываются, но и не удаляются.
func (s *serv) Status(ctx context.Context, userID int64, now time.Time) (*model.AllowanceStatus, error) {
	allowance, err := s.repo.Get(ctx, userID, dayOf(now))
	if err != nil {
		return nil, err
	}

	// Записи за день еще нет - лимит не тронут
	base := s.cfg.DailyBase()
	consumed := 0
	if allowance != nil {
		base = allowance.BaseAllowance
		consumed = allowance.ConsumedCount
	}

	// База тратится первой, поэтому остаток базы считается напрямую
	baseRemaining := base - consumed
	if baseRemaining < 0 {
		baseRemaining = 0
	}

	packs, err := s.packRepo.ListActive(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	status := &model.AllowanceStatus{
		BaseRemaining: baseRemaining,
		HasPacks:      len(packs) > 0,
		PackCount:     len(packs),
	}
	for _, p := range packs {
		status.BonusRemaining += p.SpinsRemaining
	}
	if len(packs) > 0 {
		// Пакеты отсортированы по возрастанию expires_at
		expiry := packs[0].ExpiresAt
		status.EarliestExpiry = &expiry
	}

	return status, nil
}

// CanPlay сообщает, есть ли у аккаунта хоть одна игра прямо сейчас
func (s *serv) CanPlay(ctx context.Context, userID int64, now time.Time) (bool, error) {
	status, err := s.Status(ctx, userID, now)
	if err != nil {
		return false, err
	}
	return status.TotalRemaining() > 0, nil
}
