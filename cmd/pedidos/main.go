package main

import (
	"fmt"
	"os"

	"github.com/denmor86/pedidos-sync/internal/app"
	"github.com/denmor86/pedidos-sync/internal/config"
	"github.com/denmor86/pedidos-sync/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	code := app.Run(config)
	_ = logger.Sync()
	os.Exit(code)
}
