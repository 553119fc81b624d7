package wheel

import (
	"revqr_backend/internal/config"
	"revqr_backend/internal/model"
	"revqr_backend/internal/repository"
	"revqr_backend/internal/service"
	"revqr_backend/pkg/acclock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	prizes        []model.WheelPrize
	totalWeight   int
	pointerOffset float64
	minRotations  int
	maxRotations  int

	ledgerRepo    repository.LedgerRepository
	allowanceServ service.AllowanceService
	txManager     trm.Manager
	locks         *acclock.Set
}

// NewWheelService создает колесо призов. Каталог уже провалидирован
// при загрузке конфига, во время игры плохих каталогов не бывает.
func NewWheelService(
	cfg config.WheelConfig,
	ledgerRepo repository.LedgerRepository,
	allowanceServ service.AllowanceService,
	txManager trm.Manager,
	locks *acclock.Set,
) service.WheelService {
	prizes := cfg.Prizes()
	total := 0
	for _, p := range prizes {
		total += p.Weight
	}

	return &serv{
		prizes:        prizes,
		totalWeight:   total,
		pointerOffset: cfg.PointerOffset(),
		minRotations:  cfg.MinFullRotations(),
		maxRotations:  cfg.MaxFullRotations(),
		ledgerRepo:    ledgerRepo,
		allowanceServ: allowanceServ,
		txManager:     txManager,
		locks:         locks,
	}
}
