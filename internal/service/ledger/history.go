package ledger

import (
	"context"

	"revqr_backend/internal/model"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// History - страница истории аккаунта, новые записи первыми.
// Курсором служит ID последней записи предыдущей страницы,
// так что обход можно перезапустить с любого места.
func (s *serv) History(ctx context.Context, userID int64, limit int, beforeID int64) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return s.repo.List(ctx, userID, limit, beforeID)
}
