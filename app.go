package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"tourgen/internal/config"
	"tourgen/internal/events"
	"tourgen/internal/models"
	"tourgen/internal/services"
)

// App struct
type App struct {
	ctx     context.Context
	cfg     config.Config
	log     logrus.FieldLogger
	bridge  services.StorageBridgeService
	port    *events.WailsPort
	dbClose func() error
}

var errNotStarted = errors.New("app is not started")

// NewApp creates a new App application struct
func NewApp(cfg config.Config, bridge services.StorageBridgeService, log logrus.FieldLogger, dbClose func() error) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		bridge:  bridge,
		dbClose: dbClose,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.port = events.NewWailsPort(ctx, a.log)
	a.bridge.Startup(ctx, a.port)
	a.log.WithField("event", events.InteropToApp).Info("storage bridge subscribed")
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			a.log.WithError(err).Error("failed to close database")
		} else {
			a.log.Info("database closed")
		}
		a.dbClose = nil
	}
}

// Flags returns the values the frontend passes to the app on init.
func (a *App) Flags() models.Flags {
	return a.cfg.Flags()
}

// Dispatch receives one outbound interop message from the frontend. The
// frontend waits for each call to return before making the next one.
func (a *App) Dispatch(msg interface{}) error {
	if a.port == nil {
		return errNotStarted
	}
	return a.port.Dispatch(msg)
}
