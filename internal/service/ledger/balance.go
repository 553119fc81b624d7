package ledger

import "context"

// GetBalance - сумма всех транзакций аккаунта.
// Для аккаунта без истории возвращает 0, а не ошибку
func (s *serv) GetBalance(ctx context.Context, userID int64) (int, error) {
	return s.repo.Balance(ctx, userID)
}
