package wheel

import (
	"context"
	"math/rand"
	"time"

	"revqr_backend/internal/model"
)

// Spin - полное вращение колеса: списание одной игры из лимита,
// взвешенный выбор приза, начисление выплаты и подготовка углов
// для клиентской анимации. Все это одна критическая секция аккаунта
// и одна транзакция: частичного применения не бывает.
func (s *serv) Spin(ctx context.Context, userID int64) (*model.WheelSpinResult, error) {
	// Занимаем критическую секцию аккаунта
	release, err := s.locks.Acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now()

	var res *model.WheelSpinResult

	// Начало транзакции, где выполняется процесс вращения
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Списываем одну игру из дневного лимита или пакета
		if err := s.allowanceServ.ConsumeSpin(txCtx, userID, now); err != nil {
			return err
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		// Жребий - единственный источник истины об исходе
		idx := s.draw()
		prize := s.prizes[idx]

		// Начисление выигрыша
		if prize.Payout != 0 {
			trx := &model.Transaction{
				UserID:      userID,
				Amount:      prize.Payout,
				Category:    model.CategoryEarning,
				Subtype:     model.SubtypeWheelPrize,
				Description: "spin wheel prize: " + prize.Name,
				Metadata: map[string]any{
					"prize_index": prize.Index,
					"prize_name":  prize.Name,
				},
			}
			if err := s.ledgerRepo.Insert(txCtx, trx); err != nil {
				return err
			}
		}

		balance, err := s.ledgerRepo.Balance(txCtx, userID)
		if err != nil {
			return err
		}

		status, err := s.allowanceServ.Status(txCtx, userID, now)
		if err != nil {
			return err
		}

		target := AngleFor(idx, len(s.prizes), s.pointerOffset)
		res = &model.WheelSpinResult{
			PrizeIndex:    idx,
			Prize:         prize,
			TargetAngle:   target,
			TotalRotation: s.spinRotation(target),
			Balance:       balance,
			Allowance:     *status,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// draw разыгрывает приз: равномерный жребий в [1, totalWeight]
// и проход по каталогу с накоплением весов
func (s *serv) draw() int {
	r := rand.Intn(s.totalWeight) + 1

	weights := make([]int, len(s.prizes))
	for i, p := range s.prizes {
		weights[i] = p.Weight
	}

	return pickPrize(weights, r)
}

// spinRotation добавляет к целевому углу k полных оборотов для анимации.
// k выбирается из настроенного диапазона и на выплату не влияет.
func (s *serv) spinRotation(targetAngle float64) float64 {
	k := s.minRotations
	if s.maxRotations > s.minRotations {
		k += rand.Intn(s.maxRotations - s.minRotations + 1)
	}
	return float64(k)*360 + targetAngle
}
