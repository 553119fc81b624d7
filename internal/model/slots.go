package model

// Размер поля слота
const (
	SlotRows = 3
	SlotCols = 3
)

// SlotBoard - поле 3x3 с ID символов. Создается на каждый спин,
// после оценки не сохраняется.
type SlotBoard [SlotRows][SlotCols]string

// SlotSymbol - символ слота из каталога
type SlotSymbol struct {
	ID     string
	Rarity int  // ранг редкости, одинаковый ранг дает rarity-выигрыш
	IsWild bool // вайлд совпадает с любым символом
}

// Виды совпадения на линии
const (
	MatchExact  = "exact"  // три символа совпали по ID (с учетом вайлдов)
	MatchRarity = "rarity" // совпал только ранг редкости, уменьшенная выплата
)

// Виды линий для таблицы выплат
const (
	LineKindStraight = "straight" // ряды и колонки
	LineKindDiagonal = "diagonal"
)

// Идентификаторы линий. 8 линий: 3 ряда, 3 колонки, 2 диагонали.
const (
	LineRowTop    = "row_top"
	LineRowMiddle = "row_middle"
	LineRowBottom = "row_bottom"
	LineColLeft   = "col_left"
	LineColMiddle = "col_middle"
	LineColRight  = "col_right"
	LineDiagMain  = "diag_main" // слева-сверху направо-вниз
	LineDiagAnti  = "diag_anti" // слева-снизу направо-вверх
)

// SlotLineWin - одна выигрышная линия
type SlotLineWin struct {
	Line   string // идентификатор линии
	Match  string // exact или rarity
	Symbol string // базовый символ линии ("" для трех вайлдов)
	Wilds  int    // количество вайлдов на линии
	Payout int    // выплата по линии вместе с бонусами за вайлды
}

// SlotSpinResult - результат одного спина слота
type SlotSpinResult struct {
	Board       SlotBoard
	LineWins    []SlotLineWin
	TotalPayout int
	Balance     int // баланс после списания ставки и начисления выигрыша
	Allowance   AllowanceStatus
}
