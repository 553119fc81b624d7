package app

import (
	"context"
	"log"

	"revqr_backend/internal/config"
)

const configYAMLPath = "config.yaml"

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

// Bootstrap поднимает ядро: окружение, игровые каталоги, база.
// Каталоги валидируются здесь целиком, чтобы пустое колесо или
// нулевой вес всплыли на старте, а не посреди игры.
func (a *App) Bootstrap(ctx context.Context) (*ServiceProvider, error) {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	a.initServiceProvider()

	sp := a.ServiceProvider

	// Жадная загрузка каталогов
	sp.WheelCfg()
	sp.SlotsCfg()
	sp.AllowanceCfg()

	// Соединение с базой и сборка сервисов
	sp.LedgerService(ctx)
	sp.AllowanceService(ctx)
	sp.WheelService(ctx)
	sp.SlotsService(ctx)

	log.Printf("core services ready")
	return sp, nil
}
