package model

import "errors"

// Ошибки ядра. Все они восстановимые: внешний слой превращает их
// в конкретный ответ пользователю, процесс никогда не падает.
var (
	// ErrInvalidAmount - сумма транзакции равна нулю
	ErrInvalidAmount = errors.New("transaction amount must be non-zero")
	// ErrInsufficientFunds - списание ушло бы в минус
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound - аккаунт не найден (только пути чтения)
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmptyCatalog - каталог колеса пуст (ловится при загрузке конфига)
	ErrEmptyCatalog = errors.New("wheel catalog is empty")
	// ErrInvalidWeight - вес приза не положительный (ловится при загрузке конфига)
	ErrInvalidWeight = errors.New("prize weight must be positive")

	// ErrInvalidGrid - поле слота неправильной формы или с неизвестным символом
	ErrInvalidGrid = errors.New("invalid slot grid")

	// ErrNoSpinsRemaining - дневной лимит и бонусные пакеты исчерпаны
	ErrNoSpinsRemaining = errors.New("no spins remaining")
	// ErrPackNotFound - пакет спинов с таким ID не существует
	ErrPackNotFound = errors.New("spin pack not found")

	// ErrBusy - не удалось занять критическую секцию аккаунта за отведенное время
	ErrBusy = errors.New("account is busy")
)
