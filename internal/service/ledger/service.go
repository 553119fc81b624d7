package ledger

import (
	"revqr_backend/internal/repository"
	"revqr_backend/internal/service"
	"revqr_backend/pkg/acclock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.LedgerRepository
	txManager trm.Manager
	locks     *acclock.Set
}

// NewLedgerService создает журнал монет
func NewLedgerService(
	repo repository.LedgerRepository,
	txManager trm.Manager,
	locks *acclock.Set,
) service.LedgerService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		locks:     locks,
	}
}
