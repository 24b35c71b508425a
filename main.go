package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"tourgen/internal/config"
	"tourgen/internal/database"
	"tourgen/internal/logging"
	"tourgen/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Configuration errors are fatal: the window never opens.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}
	host, err := config.LoadHost()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading host configuration:", err)
		os.Exit(1)
	}

	log := logging.New(os.Stderr, host.LogLevel)

	db, err := database.Init(database.Config{
		Path:     host.DBPath,
		LogLevel: logger.Warn,
		Log:      log,
	})
	if err != nil {
		log.WithError(err).Error("opening database")
		os.Exit(1)
	}

	var secrets services.SecretStore
	if host.Keyring {
		secrets = services.NewKeyringService()
	}
	dbService := services.NewDbServices(db, secrets, log)

	app := NewApp(cfg, dbService.Bridge, log, func() error {
		return database.Close(db)
	})

	err = wails.Run(&options.App{
		Title:  "Tourgen",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Tourgen",
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		Logger:           logging.NewWailsLogger(log),
		LogLevel:         logging.WailsLevel(log.GetLevel()),
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		log.WithError(err).Error("wails run")
		os.Exit(1)
	}
}
