package slots

import (
	"math/rand"

	"revqr_backend/internal/model"
)

// Семейства выигрышных раскладок. Веса задаются в конфиге,
// отсутствующие берутся по умолчанию.
const (
	patternStraightLine   = "straight_line"
	patternDiagonalExact  = "diagonal_exact"
	patternDiagonalRarity = "diagonal_rarity"
	patternRarityLine     = "rarity_line"
	patternWildCombo      = "wild_combo"
)

// Фиксированный порядок обхода, чтобы жребий был детерминирован весами
var patternFamilies = []string{
	patternStraightLine,
	patternDiagonalExact,
	patternDiagonalRarity,
	patternRarityLine,
	patternWildCombo,
}

var defaultPatternWeights = map[string]int{
	patternStraightLine:   40,
	patternDiagonalExact:  15,
	patternDiagonalRarity: 10,
	patternRarityLine:     20,
	patternWildCombo:      15,
}

// Предел попыток пересборки поля
const maxBoardAttempts = 100

// GenerateBoard строит поле 3x3 под целевые шансы: один жребий Бернулли
// решает "задуманный выигрыш" или "задуманный проигрыш", дальше поле
// конструируется под решение. Само поле после оценки никого не интересует -
// выплату определяет только EvaluateBoard.
func (s *serv) GenerateBoard() model.SlotBoard {
	if rand.Float64() < s.winProbability {
		return s.winBoard()
	}
	return s.lossBoard()
}

// winBoard реализует одно выбранное семейство раскладок и добивает
// свободные клетки так, чтобы по возможности не возникло лишних линий
func (s *serv) winBoard() model.SlotBoard {
	family := s.pickPattern()

	// Для диагональных семейств целевая линия - одна из двух диагоналей,
	// для остальных - ряд или колонка
	var target lineDef
	switch family {
	case patternDiagonalExact, patternDiagonalRarity:
		target = lines[6+rand.Intn(2)]
	default:
		target = lines[rand.Intn(6)]
	}

	var board model.SlotBoard
	s.placePattern(&board, family, target)

	inTarget := map[[2]int]bool{}
	for _, cell := range target.cells {
		inTarget[cell] = true
	}

	// Свободные клетки - случайные обычные символы
	for r := 0; r < model.SlotRows; r++ {
		for c := 0; c < model.SlotCols; c++ {
			if board[r][c] == "" {
				board[r][c] = s.randomRegular()
			}
		}
	}

	// Переигрываем свободные клетки случайно возникших лишних линий
	for attempt := 0; attempt < maxBoardAttempts; attempt++ {
		wins, err := s.EvaluateBoard(board, 1)
		if err != nil {
			break
		}

		var extra *model.SlotLineWin
		for i := range wins {
			if wins[i].Line != target.id {
				extra = &wins[i]
				break
			}
		}
		if extra == nil {
			break
		}

		for _, line := range lines {
			if line.id != extra.Line {
				continue
			}
			for _, cell := range line.cells {
				if !inTarget[cell] {
					board[cell[0]][cell[1]] = s.randomRegularExcept(board[cell[0]][cell[1]])
					break
				}
			}
		}
	}

	return board
}

// placePattern заполняет клетки целевой линии под семейство
func (s *serv) placePattern(board *model.SlotBoard, family string, target lineDef) {
	switch family {
	case patternRarityLine, patternDiagonalRarity:
		// Линия одного ранга редкости, но не одного символа
		if tier := s.rarityTier(); len(tier) >= 2 {
			first := tier[rand.Intn(len(tier))]
			second := first
			for second == first {
				second = tier[rand.Intn(len(tier))]
			}
			fill := []string{first, second, tier[rand.Intn(len(tier))]}
			for i, cell := range target.cells {
				board[cell[0]][cell[1]] = fill[i]
			}
			return
		}
		// Ранга с двумя символами нет - вырождаемся в точную линию
		fallthrough
	case patternStraightLine, patternDiagonalExact:
		sym := s.randomRegular()
		for _, cell := range target.cells {
			board[cell[0]][cell[1]] = sym
		}
	case patternWildCombo:
		if len(s.wilds) == 0 {
			// Вайлдов в каталоге нет - обычная точная линия
			sym := s.randomRegular()
			for _, cell := range target.cells {
				board[cell[0]][cell[1]] = sym
			}
			return
		}
		base := s.randomRegular()
		wild := s.wilds[rand.Intn(len(s.wilds))]
		wildPos := rand.Intn(3)
		for i, cell := range target.cells {
			if i == wildPos {
				board[cell[0]][cell[1]] = wild
			} else {
				board[cell[0]][cell[1]] = base
			}
		}
	}
}

// lossBoard - случайное поле без единой выигрышной линии.
// Случайные поля с нечаянным выигрышем отбрасываются и переигрываются;
// если лимит попыток вышел - детерминированная проигрышная раскладка.
func (s *serv) lossBoard() model.SlotBoard {
	var board model.SlotBoard

	for attempt := 0; attempt < maxBoardAttempts; attempt++ {
		for r := 0; r < model.SlotRows; r++ {
			for c := 0; c < model.SlotCols; c++ {
				board[r][c] = s.symbols[rand.Intn(len(s.symbols))].ID
			}
		}

		wins, err := s.EvaluateBoard(board, 1)
		if err == nil && len(wins) == 0 {
			return board
		}
	}

	// Запасной путь: чередование двух символов разных рангов,
	// ни одна из 8 линий не собирается ни точно, ни по рангу
	a, b := s.lossPair[0], s.lossPair[1]
	return model.SlotBoard{
		{a, a, b},
		{b, b, a},
		{a, b, a},
	}
}

// pickPattern разыгрывает семейство раскладки по весам
func (s *serv) pickPattern() string {
	total := 0
	for _, family := range patternFamilies {
		total += s.patternWeight(family)
	}

	r := rand.Intn(total) + 1
	runningSum := 0
	for _, family := range patternFamilies {
		runningSum += s.patternWeight(family)
		if runningSum >= r {
			return family
		}
	}
	return patternStraightLine
}

func (s *serv) patternWeight(family string) int {
	if w, ok := s.patternWeights[family]; ok && w > 0 {
		return w
	}
	return defaultPatternWeights[family]
}

// rarityTier - ID обычных символов какого-нибудь ранга,
// представленного хотя бы двумя символами
func (s *serv) rarityTier() []string {
	byRarity := map[int][]string{}
	for _, id := range s.regular {
		r := s.byID[id].Rarity
		byRarity[r] = append(byRarity[r], id)
	}

	var candidates [][]string
	for _, ids := range byRarity {
		if len(ids) >= 2 {
			candidates = append(candidates, ids)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rand.Intn(len(candidates))]
}

func (s *serv) randomRegular() string {
	return s.regular[rand.Intn(len(s.regular))]
}

// randomRegularExcept - случайный обычный символ, отличный от except
func (s *serv) randomRegularExcept(except string) string {
	if len(s.regular) == 1 {
		return s.regular[0]
	}
	id := s.randomRegular()
	for id == except {
		id = s.randomRegular()
	}
	return id
}
