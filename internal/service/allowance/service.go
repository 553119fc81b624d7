package allowance

import (
	"time"

	"revqr_backend/internal/config"
	"revqr_backend/internal/repository"
	"revqr_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.AllowanceConfig
	repo      repository.AllowanceRepository
	packRepo  repository.PackRepository
	txManager trm.Manager
}

// NewAllowanceService создает менеджер дневного лимита игр
func NewAllowanceService(
	cfg config.AllowanceConfig,
	repo repository.AllowanceRepository,
	packRepo repository.PackRepository,
	txManager trm.Manager,
) service.AllowanceService {
	return &serv{
		cfg:       cfg,
		repo:      repo,
		packRepo:  packRepo,
		txManager: txManager,
	}
}

// dayOf - календарный день момента now (UTC)
func dayOf(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
