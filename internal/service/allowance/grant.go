package allowance

import (
	"context"
	"errors"
	"time"

	"revqr_backend/internal/model"

	"github.com/google/uuid"
)

// GrantPack создает пакет бонусных спинов. Списание монет за покупку
// делает внешний магазин через LedgerService, ядро только фиксирует пакет.
func (s *serv) GrantPack(ctx context.Context, userID int64, spins int, ttl time.Duration) (*model.SpinPack, error) {
	if spins <= 0 {
		return nil, errors.New("pack must contain at least one spin")
	}
	if ttl <= 0 {
		return nil, errors.New("pack ttl must be positive")
	}

	now := time.Now().UTC()
	pack := &model.SpinPack{
		ID:             uuid.New(),
		UserID:         userID,
		SpinsRemaining: spins,
		GrantedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}

	if err := s.packRepo.Create(ctx, pack); err != nil {
		return nil, err
	}

	return pack, nil
}

// AddPackSpins пополняет существующий пакет при дозакупке.
// model.ErrPackNotFound, если пакета с таким ID нет
func (s *serv) AddPackSpins(ctx context.Context, packID uuid.UUID, spins int) error {
	if spins <= 0 {
		return errors.New("spins to add must be positive")
	}

	return s.packRepo.AddSpins(ctx, packID, spins)
}
