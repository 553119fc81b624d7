package acclock

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"revqr_backend/internal/model"
)

// Set - набор блокировок по аккаунтам. Составные операции над одним
// аккаунтом (проверка баланса + списание, проверка лимита + спин + начисление)
// выполняются строго по одной, разные аккаунты друг друга не ждут.
type Set struct {
	mu    sync.Mutex
	locks map[int64]*entry
	wait  time.Duration
}

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// NewSet создает набор блокировок. wait - максимальное ожидание
// критической секции, после него операция падает с ErrBusy.
func NewSet(wait time.Duration) *Set {
	return &Set{
		locks: make(map[int64]*entry),
		wait:  wait,
	}
}

// Acquire занимает критическую секцию аккаунта. Возвращает release,
// который обязателен к вызову (обычно через defer).
// Если секцию не удалось занять за wait - model.ErrBusy.
func (s *Set) Acquire(ctx context.Context, userID int64) (func(), error) {
	s.mu.Lock()
	e, ok := s.locks[userID]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		s.locks[userID] = e
	}
	e.refs++
	s.mu.Unlock()

	waitCtx, cancel := context.WithTimeout(ctx, s.wait)
	defer cancel()

	if err := e.sem.Acquire(waitCtx, 1); err != nil {
		s.put(userID, e)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, model.ErrBusy
		}
		return nil, err
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			e.sem.Release(1)
			s.put(userID, e)
		})
	}
	return release, nil
}

// put возвращает ссылку на запись и убирает ее из карты, когда
// аккаунтом больше никто не интересуется
func (s *Set) put(userID int64, e *entry) {
	s.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(s.locks, userID)
	}
	s.mu.Unlock()
}
