package wheel

import "math"

// Геометрия колеса. Клиент крутит картинку, сервер выбирает приз;
// обе стороны считают углы одинаково, иначе картинка остановится
// не на том секторе, который сервер оплатил.

// AngleFor - угол центра сектора index относительно указателя.
// Сектора идут по кругу в порядке каталога, каждый шириной 360/n.
func AngleFor(index, n int, pointerOffset float64) float64 {
	sliceAngle := 360.0 / float64(n)
	center := float64(index)*sliceAngle + sliceAngle/2
	return math.Mod(math.Mod(center-pointerOffset, 360)+360, 360)
}

// DecodeAngle восстанавливает индекс сектора из конечного угла.
// Для любого валидного индекса DecodeAngle(AngleFor(i)) == i -
// это свойство закреплено тестами и регрессировать не должно.
func DecodeAngle(finalAngle float64, n int, pointerOffset float64) int {
	sliceAngle := 360.0 / float64(n)
	normalized := math.Mod(math.Mod(finalAngle, 360)+360, 360)
	return int(math.Floor((normalized+pointerOffset)/sliceAngle)) % n
}

// pickPrize - индекс приза по жребию r из [1, totalWeight].
// Идем по каталогу, накапливая веса: побеждает первый сектор,
// у которого накопленная сумма достигла r. Отображение тотально:
// каждому r соответствует ровно один сектор.
func pickPrize(weights []int, r int) int {
	runningSum := 0
	for i, w := range weights {
		runningSum += w
		if runningSum >= r {
			return i
		}
	}
	// Недостижимо для r в [1, totalWeight]
	return len(weights) - 1
}
