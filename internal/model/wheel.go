package model

// WheelPrize - один сектор колеса призов.
// Каталог загружается один раз при старте и дальше не меняется.
type WheelPrize struct {
	Index  int    // позиция на колесе, 0..N-1
	Name   string // название приза
	Weight int    // положительный целый вес
	Payout int    // начисление в монетах
}

// WheelSpinResult - результат одного вращения колеса
type WheelSpinResult struct {
	PrizeIndex    int        // индекс выбранного сектора
	Prize         WheelPrize // сам приз
	TargetAngle   float64    // угол сектора относительно указателя, [0, 360)
	TotalRotation float64    // полный поворот для анимации: k*360 + TargetAngle
	Balance       int        // баланс после начисления
	Allowance     AllowanceStatus
}
