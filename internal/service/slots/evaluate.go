package slots

import (
	"revqr_backend/internal/model"
)

// lineDef - одна из 8 оцениваемых линий поля
type lineDef struct {
	id    string
	kind  string
	cells [3][2]int // {ряд, колонка}; для диагоналей cells[1] - центр
}

// 8 линий: 3 ряда, 3 колонки, 2 диагонали
var lines = []lineDef{
	{model.LineRowTop, model.LineKindStraight, [3][2]int{{0, 0}, {0, 1}, {0, 2}}},
	{model.LineRowMiddle, model.LineKindStraight, [3][2]int{{1, 0}, {1, 1}, {1, 2}}},
	{model.LineRowBottom, model.LineKindStraight, [3][2]int{{2, 0}, {2, 1}, {2, 2}}},
	{model.LineColLeft, model.LineKindStraight, [3][2]int{{0, 0}, {1, 0}, {2, 0}}},
	{model.LineColMiddle, model.LineKindStraight, [3][2]int{{0, 1}, {1, 1}, {2, 1}}},
	{model.LineColRight, model.LineKindStraight, [3][2]int{{0, 2}, {1, 2}, {2, 2}}},
	{model.LineDiagMain, model.LineKindDiagonal, [3][2]int{{0, 0}, {1, 1}, {2, 2}}},
	{model.LineDiagAnti, model.LineKindDiagonal, [3][2]int{{2, 0}, {1, 1}, {0, 2}}},
}

// symbolsMatch - правило подстановки вайлда: вайлд совпадает с чем угодно
func symbolsMatch(a, b model.SlotSymbol) bool {
	return a.IsWild || b.IsWild || a.ID == b.ID
}

// EvaluateBoard - чистая оценка поля: только поле и ставка, ничего о том,
// как поле было получено. Каждая линия проверяется на точное совпадение
// (с учетом вайлдов) и на совпадение по рангу редкости; выигрыши всех
// линий суммируются без вычеркиваний.
//
// Диагональ выигрывает только целиком: оба угла И центр. Два совпавших
// угла при чужом центре выигрышем не являются.
func (s *serv) EvaluateBoard(board model.SlotBoard, bet int) ([]model.SlotLineWin, error) {
	// Защитная проверка поля: по построению сюда попадают только
	// корректные поля из GenerateBoard
	symbols := [model.SlotRows][model.SlotCols]model.SlotSymbol{}
	for r := 0; r < model.SlotRows; r++ {
		for c := 0; c < model.SlotCols; c++ {
			sym, ok := s.byID[board[r][c]]
			if !ok {
				return nil, model.ErrInvalidGrid
			}
			symbols[r][c] = sym
		}
	}

	var wins []model.SlotLineWin
	for _, line := range lines {
		a := symbols[line.cells[0][0]][line.cells[0][1]]
		b := symbols[line.cells[1][0]][line.cells[1][1]]
		c := symbols[line.cells[2][0]][line.cells[2][1]]

		wilds := 0
		base := ""
		for _, sym := range []model.SlotSymbol{a, b, c} {
			if sym.IsWild {
				wilds++
			} else if base == "" {
				base = sym.ID
			}
		}

		// Три вайлда - джекпот-кап: фиксированный множитель вместо
		// базовой выплаты и бонусов за вайлды
		if wilds == 3 {
			wins = append(wins, model.SlotLineWin{
				Line:   line.id,
				Match:  model.MatchExact,
				Symbol: "",
				Wilds:  3,
				Payout: s.jackpotMultiplier * bet,
			})
			continue
		}

		// Точное совпадение: все три клетки попарно совпадают
		// через правило вайлда
		if symbolsMatch(a, b) && symbolsMatch(b, c) && symbolsMatch(a, c) {
			payout := s.payout(line.kind, model.MatchExact) * bet
			payout += s.wildBonus(line, a, b, c) * bet
			wins = append(wins, model.SlotLineWin{
				Line:   line.id,
				Match:  model.MatchExact,
				Symbol: base,
				Wilds:  wilds,
				Payout: payout,
			})
			continue
		}

		// Совпадение по рангу редкости - уменьшенная выплата
		if a.Rarity == b.Rarity && b.Rarity == c.Rarity {
			wins = append(wins, model.SlotLineWin{
				Line:   line.id,
				Match:  model.MatchRarity,
				Symbol: base,
				Wilds:  wilds,
				Payout: s.payout(line.kind, model.MatchRarity) * bet,
			})
		}
	}

	return wins, nil
}

// wildBonus - добавка к выплате линии в кратностях ставки.
// На прямой линии бонус дает каждый вайлд, на диагонали - только угловые.
func (s *serv) wildBonus(line lineDef, a, b, c model.SlotSymbol) int {
	if line.kind == model.LineKindStraight {
		bonus := 0
		for _, sym := range []model.SlotSymbol{a, b, c} {
			if sym.IsWild {
				bonus += s.wildLineBonus
			}
		}
		return bonus
	}

	// Диагональ: cells[0] и cells[2] - углы, центр бонуса не дает
	bonus := 0
	if a.IsWild {
		bonus += s.wildCornerBonus
	}
	if c.IsWild {
		bonus += s.wildCornerBonus
	}
	return bonus
}
