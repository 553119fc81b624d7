package app

import (
	"context"

	"revqr_backend/internal/config"
	"revqr_backend/internal/config/env"
	"revqr_backend/internal/repository"
	"revqr_backend/internal/repository/allowance_repo"
	"revqr_backend/internal/repository/ledger_repo"
	"revqr_backend/internal/repository/pack_repo"
	"revqr_backend/internal/service"
	"revqr_backend/internal/service/allowance"
	"revqr_backend/internal/service/ledger"
	"revqr_backend/internal/service/slots"
	"revqr_backend/internal/service/wheel"
	"revqr_backend/pkg/acclock"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ServiceProvider - корень сборки ядра. Внешний слой (HTTP, боты,
// админка) получает отсюда готовые сервисы; сам провайдер ленивый,
// каждая зависимость создается при первом обращении.
type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Блокировки аккаунтов
	lockCfg config.LockConfig
	locks   *acclock.Set

	// Ledger bits
	ledgerRepo repository.LedgerRepository
	ledgerServ service.LedgerService

	// Allowance bits
	allowanceCfg  config.AllowanceConfig
	allowanceRepo repository.AllowanceRepository
	packRepo      repository.PackRepository
	allowanceServ service.AllowanceService

	// Wheel bits
	wheelCfg  config.WheelConfig
	wheelServ service.WheelService

	// Slots bits
	slotsCfg  config.SlotsConfig
	slotsServ service.SlotsService
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) LockCfg() config.LockConfig {
	if sp.lockCfg == nil {
		cfg, err := env.NewLockConfig()
		if err != nil {
			panic("failed to get lock config: " + err.Error())
		}
		sp.lockCfg = cfg
	}
	return sp.lockCfg
}

// Locks - общий набор блокировок аккаунтов. Один на процесс:
// журнал, лимиты и обе игры сериализуются по одному и тому же ключу
func (sp *ServiceProvider) Locks() *acclock.Set {
	if sp.locks == nil {
		sp.locks = acclock.NewSet(sp.LockCfg().WaitTimeout())
	}
	return sp.locks
}

func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(sp.LedgerRepository(ctx), sp.TXManager(ctx), sp.Locks())
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) AllowanceCfg() config.AllowanceConfig {
	if sp.allowanceCfg == nil {
		cfg, err := env.NewAllowanceConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get allowance config: " + err.Error())
		}
		sp.allowanceCfg = cfg
	}
	return sp.allowanceCfg
}

func (sp *ServiceProvider) AllowanceRepository(ctx context.Context) repository.AllowanceRepository {
	if sp.allowanceRepo == nil {
		sp.allowanceRepo = allowance_repo.NewAllowanceRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.allowanceRepo
}

func (sp *ServiceProvider) PackRepository(ctx context.Context) repository.PackRepository {
	if sp.packRepo == nil {
		sp.packRepo = pack_repo.NewPackRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.packRepo
}

func (sp *ServiceProvider) AllowanceService(ctx context.Context) service.AllowanceService {
	if sp.allowanceServ == nil {
		sp.allowanceServ = allowance.NewAllowanceService(
			sp.AllowanceCfg(),
			sp.AllowanceRepository(ctx),
			sp.PackRepository(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.allowanceServ
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(
			sp.WheelCfg(),
			sp.LedgerRepository(ctx),
			sp.AllowanceService(ctx),
			sp.TXManager(ctx),
			sp.Locks(),
		)
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) SlotsCfg() config.SlotsConfig {
	if sp.slotsCfg == nil {
		cfg, err := env.NewSlotsConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get slots config: " + err.Error())
		}
		sp.slotsCfg = cfg
	}
	return sp.slotsCfg
}

func (sp *ServiceProvider) SlotsService(ctx context.Context) service.SlotsService {
	if sp.slotsServ == nil {
		serv, err := slots.NewSlotsService(
			sp.SlotsCfg(),
			sp.LedgerRepository(ctx),
			sp.AllowanceService(ctx),
			sp.TXManager(ctx),
			sp.Locks(),
		)
		if err != nil {
			panic("failed to create slots service: " + err.Error())
		}
		sp.slotsServ = serv
	}
	return sp.slotsServ
}
