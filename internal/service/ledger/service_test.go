package ledger

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"revqr_backend/internal/model"
	"revqr_backend/pkg/acclock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txManagerStub прогоняет callback без настоящей транзакции:
// атомарность в тестах обеспечивает блокировка аккаунта
type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memLedgerRepo - журнал в памяти. Каждая операция сама по себе
// потокобезопасна, но "проверил баланс + вставил" намеренно не атомарно:
// это ровно то, что обязан закрывать сервис.
type memLedgerRepo struct {
	mu   sync.Mutex
	seq  int64
	rows []model.Transaction
}

func (m *memLedgerRepo) Balance(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sum := 0
	for _, trx := range m.rows {
		if trx.UserID == userID {
			sum += trx.Amount
		}
	}
	return sum, nil
}

func (m *memLedgerRepo) Insert(_ context.Context, trx *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	trx.ID = m.seq
	trx.CreatedAt = time.Now()
	m.rows = append(m.rows, *trx)
	return nil
}

func (m *memLedgerRepo) List(_ context.Context, userID int64, limit int, beforeID int64) ([]model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Transaction
	for _, trx := range m.rows {
		if trx.UserID != userID {
			continue
		}
		if beforeID > 0 && trx.ID >= beforeID {
			continue
		}
		result = append(result, trx)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func newTestService() (*serv, *memLedgerRepo) {
	repo := &memLedgerRepo{}
	s := NewLedgerService(repo, txManagerStub{}, acclock.NewSet(5*time.Second))
	return s.(*serv), repo
}

func TestGetBalance_EmptyAccount(t *testing.T) {
	s, _ := newTestService()

	balance, err := s.GetBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestRecordTransaction_ZeroAmount(t *testing.T) {
	s, _ := newTestService()

	_, err := s.RecordTransaction(context.Background(), 1, 0, model.SubtypeAdjustment, "", nil)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestRecordTransaction_BalanceIsRunningSum(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	amounts := []int{100, -30, 25, -50, 7}
	want := 0
	for _, amount := range amounts {
		trx, err := s.RecordTransaction(ctx, 1, amount, model.SubtypeAdjustment, "test", nil)
		require.NoError(t, err)
		want += amount

		balance, err := s.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want, balance)
		assert.Equal(t, model.CategoryFor(amount), trx.Category)
		assert.NotZero(t, trx.ID)
	}
}

func TestRecordTransaction_RejectsOverdraft(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	_, err := s.RecordTransaction(ctx, 1, 40, model.SubtypeAdjustment, "", nil)
	require.NoError(t, err)

	// Списание больше баланса отклоняется целиком, без частичного применения
	_, err = s.RecordTransaction(ctx, 1, -41, model.SubtypeSlotBet, "", nil)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	balance, err := s.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, balance)

	// Ровно в ноль - можно
	_, err = s.RecordTransaction(ctx, 1, -40, model.SubtypeSlotBet, "", nil)
	require.NoError(t, err)

	balance, err = s.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestRecordTransaction_AccountsAreIndependent(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	_, err := s.RecordTransaction(ctx, 1, 10, model.SubtypeAdjustment, "", nil)
	require.NoError(t, err)
	_, err = s.RecordTransaction(ctx, 2, 99, model.SubtypeAdjustment, "", nil)
	require.NoError(t, err)

	b1, err := s.GetBalance(ctx, 1)
	require.NoError(t, err)
	b2, err := s.GetBalance(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, b1)
	assert.Equal(t, 99, b2)
}

func TestHistory_NewestFirstWithCursor(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.RecordTransaction(ctx, 1, 10+i, model.SubtypeAdjustment, "", nil)
		require.NoError(t, err)
	}

	page, err := s.History(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 14, page[0].Amount)
	assert.Equal(t, 13, page[1].Amount)

	// Перезапуск обхода с курсора
	page, err = s.History(ctx, 1, 2, page[1].ID)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 12, page[0].Amount)
	assert.Equal(t, 11, page[1].Amount)
}

func TestHistory_LimitDefaults(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	_, err := s.RecordTransaction(ctx, 1, 5, model.SubtypeAdjustment, "", nil)
	require.NoError(t, err)

	// Нулевой и отрицательный лимит не роняют запрос
	page, err := s.History(ctx, 1, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	page, err = s.History(ctx, 1, -3, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

// 100 параллельных списаний по 1 монете при балансе 50: ровно 50 успехов,
// ровно 50 отказов, итоговый баланс 0. Ни одно списание не применяется
// частично и не уводит баланс в минус.
func TestRecordTransaction_ConcurrentDebits(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	_, err := s.RecordTransaction(ctx, 1, 50, model.SubtypeAdjustment, "seed", nil)
	require.NoError(t, err)

	const attempts = 100
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RecordTransaction(ctx, 1, -1, model.SubtypeSlotBet, "", nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, rejected := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, model.ErrInsufficientFunds)
			rejected++
		}
	}

	assert.Equal(t, 50, succeeded)
	assert.Equal(t, 50, rejected)

	balance, err := s.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}
