package slots

import (
	"fmt"

	"revqr_backend/internal/config"
	"revqr_backend/internal/model"
	"revqr_backend/internal/repository"
	"revqr_backend/internal/service"
	"revqr_backend/pkg/acclock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	symbols  []model.SlotSymbol
	byID     map[string]model.SlotSymbol
	regular  []string // ID обычных символов
	wilds    []string // ID вайлдов
	lossPair [2]string

	winProbability    float64
	patternWeights    map[string]int
	payout            func(lineKind, matchKind string) int
	wildLineBonus     int
	wildCornerBonus   int
	jackpotMultiplier int

	ledgerRepo    repository.LedgerRepository
	allowanceServ service.AllowanceService
	txManager     trm.Manager
	locks         *acclock.Set
}

// NewSlotsService создает слот 3x3
func NewSlotsService(
	cfg config.SlotsConfig,
	ledgerRepo repository.LedgerRepository,
	allowanceServ service.AllowanceService,
	txManager trm.Manager,
	locks *acclock.Set,
) (service.SlotsService, error) {
	symbols := cfg.Symbols()

	s := &serv{
		symbols:           symbols,
		byID:              make(map[string]model.SlotSymbol, len(symbols)),
		winProbability:    cfg.WinProbability(),
		patternWeights:    cfg.PatternWeights(),
		payout:            cfg.PayoutMultiplier,
		wildLineBonus:     cfg.WildLineBonus(),
		wildCornerBonus:   cfg.WildCornerBonus(),
		jackpotMultiplier: cfg.JackpotMultiplier(),
		ledgerRepo:        ledgerRepo,
		allowanceServ:     allowanceServ,
		txManager:         txManager,
		locks:             locks,
	}

	for _, sym := range symbols {
		s.byID[sym.ID] = sym
		if sym.IsWild {
			s.wilds = append(s.wilds, sym.ID)
		} else {
			s.regular = append(s.regular, sym.ID)
		}
	}

	// Пара обычных символов разных рангов - гарантированно проигрышная
	// раскладка для запасного пути генерации
	for _, id := range s.regular {
		if s.lossPair[0] == "" {
			s.lossPair[0] = id
			continue
		}
		if s.byID[id].Rarity != s.byID[s.lossPair[0]].Rarity {
			s.lossPair[1] = id
			break
		}
	}
	if s.lossPair[1] == "" {
		return nil, fmt.Errorf("slots catalog needs non-wild symbols of at least two rarity tiers")
	}

	return s, nil
}
