package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tourgen/internal/events"
	"tourgen/internal/interop"
	"tourgen/internal/models"
	"tourgen/internal/repositories"
)

// Storage keys shared with the app.
const (
	ToursKey    = "tours"
	SettingsKey = "settings"
)

type StorageBridgeService interface {
	// Startup subscribes to the port. Replies are sent back over the same port.
	Startup(ctx context.Context, port events.Port)
	// Handle performs the storage operation for msg and returns the reply to
	// send, or nil when the message has none.
	Handle(ctx context.Context, msg interop.Outbound) (interop.Inbound, error)
	HandlePayload(ctx context.Context, payload []byte) (interop.Inbound, error)
	LoadTours(ctx context.Context) []models.Tour
	LoadSettings(ctx context.Context) *models.Settings
}

type storageBridgeService struct {
	storage repositories.StorageRepository
	secrets SecretStore
	log     logrus.FieldLogger

	mu   sync.Mutex
	once sync.Once
}

// NewStorageBridgeService builds the bridge. secrets may be nil, in which
// case API keys are stored inline with the settings.
func NewStorageBridgeService(storage repositories.StorageRepository, secrets SecretStore, log logrus.FieldLogger) StorageBridgeService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &storageBridgeService{
		storage: storage,
		secrets: secrets,
		log:     log.WithField("component", "bridge"),
	}
}

func (s *storageBridgeService) Startup(ctx context.Context, port events.Port) {
	s.once.Do(func() {
		port.Subscribe(func(payload []byte) {
			reply, err := s.HandlePayload(ctx, payload)
			if err != nil {
				s.log.WithError(err).Error("interop message failed")
				return
			}
			if reply == nil {
				return
			}
			if err := port.Send(reply); err != nil {
				s.log.WithError(err).WithField("tag", reply.Tag()).Error("send reply")
			}
		})
	})
}

func (s *storageBridgeService) HandlePayload(ctx context.Context, payload []byte) (interop.Inbound, error) {
	msg, err := interop.DecodeOutbound(payload)
	if err != nil {
		return nil, err
	}
	return s.Handle(ctx, msg)
}

func (s *storageBridgeService) Handle(ctx context.Context, msg interop.Outbound) (interop.Inbound, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithFields(logrus.Fields{
		"message_id": uuid.NewString(),
		"tag":        msg.Tag(),
	})
	log.Debug("handling interop message")

	switch m := msg.(type) {
	case interop.LoadTours:
		return interop.ToursLoaded{Data: s.loadTours(ctx, log)}, nil
	case interop.LoadSettings:
		return interop.SettingsLoaded{Data: s.loadSettings(ctx, log)}, nil
	case interop.SaveTour:
		if err := s.saveTour(ctx, m.Data); err != nil {
			return nil, err
		}
		log.WithField("tour_id", m.Data.ID).Info("tour saved")
		return nil, nil
	case interop.SaveSettings:
		if err := s.saveSettings(ctx, m.Data); err != nil {
			return nil, err
		}
		log.Info("settings saved")
		return interop.SettingsSaved{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", interop.ErrUnknownTag, msg.Tag())
	}
}

func (s *storageBridgeService) LoadTours(ctx context.Context) []models.Tour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTours(ctx, s.log)
}

func (s *storageBridgeService) LoadSettings(ctx context.Context) *models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSettings(ctx, s.log)
}

// loadTours never fails: anything unreadable counts as no tours.
func (s *storageBridgeService) loadTours(ctx context.Context, log logrus.FieldLogger) []models.Tour {
	raw, found, err := s.storage.GetItem(ctx, ToursKey)
	if err != nil {
		log.WithError(err).WithField("key", ToursKey).Warn("read failed, using empty list")
		return []models.Tour{}
	}
	if !found {
		return []models.Tour{}
	}

	var tours []models.Tour
	if err := json.Unmarshal([]byte(raw), &tours); err != nil {
		log.WithError(err).WithField("key", ToursKey).Warn("stored value is not a tour list, using empty list")
		return []models.Tour{}
	}
	if tours == nil {
		return []models.Tour{}
	}
	return tours
}

// loadSettings never fails: anything unreadable counts as no settings.
func (s *storageBridgeService) loadSettings(ctx context.Context, log logrus.FieldLogger) *models.Settings {
	raw, found, err := s.storage.GetItem(ctx, SettingsKey)
	if err != nil {
		log.WithError(err).WithField("key", SettingsKey).Warn("read failed, using null")
		return nil
	}
	if !found || raw == "" {
		return nil
	}

	var settings *models.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.WithError(err).WithField("key", SettingsKey).Warn("stored value is not settings, using null")
		return nil
	}
	if settings == nil {
		return nil
	}

	if s.secrets != nil && settings.APIKey == "" {
		key, err := s.secrets.GetApiKey(SettingsAPIKeyAccount)
		switch {
		case err == nil:
			settings.APIKey = key
		case errors.Is(err, ErrSecretNotFound):
		default:
			log.WithError(err).Warn("read api key from keyring")
		}
	}
	return settings
}

// saveTour appends without decoding the stored tours, so fields this
// version does not know about survive.
func (s *storageBridgeService) saveTour(ctx context.Context, tour models.Tour) error {
	raw, found, err := s.storage.GetItem(ctx, ToursKey)
	if err != nil {
		return fmt.Errorf("read %s: %w", ToursKey, err)
	}

	tours := []json.RawMessage{}
	if found && raw != "" {
		if err := json.Unmarshal([]byte(raw), &tours); err != nil {
			return fmt.Errorf("parse %s: %w", ToursKey, err)
		}
		if tours == nil {
			tours = []json.RawMessage{}
		}
	}

	encoded, err := json.Marshal(tour)
	if err != nil {
		return fmt.Errorf("encode tour: %w", err)
	}
	tours = append(tours, encoded)

	data, err := json.Marshal(tours)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ToursKey, err)
	}
	if err := s.storage.SetItem(ctx, ToursKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", ToursKey, err)
	}
	return nil
}

// saveSettings writes the stored settings before the keyring. A keyring
// failure puts the previous settings back, so the two never disagree.
func (s *storageBridgeService) saveSettings(ctx context.Context, settings models.Settings) error {
	apiKey := settings.APIKey
	if s.secrets != nil {
		settings.APIKey = ""
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode %s: %w", SettingsKey, err)
	}

	var prev string
	var hadPrev bool
	if s.secrets != nil {
		prev, hadPrev, err = s.storage.GetItem(ctx, SettingsKey)
		if err != nil {
			return fmt.Errorf("read %s: %w", SettingsKey, err)
		}
	}

	if err := s.storage.SetItem(ctx, SettingsKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", SettingsKey, err)
	}
	if s.secrets == nil {
		return nil
	}

	if err := s.secrets.StoreApiKey(SettingsAPIKeyAccount, apiKey); err != nil {
		s.restoreSettings(ctx, prev, hadPrev)
		return fmt.Errorf("store api key: %w", err)
	}
	return nil
}

func (s *storageBridgeService) restoreSettings(ctx context.Context, prev string, hadPrev bool) {
	var err error
	if hadPrev {
		err = s.storage.SetItem(ctx, SettingsKey, prev)
	} else {
		err = s.storage.RemoveItem(ctx, SettingsKey)
	}
	if err != nil {
		s.log.WithError(err).WithField("key", SettingsKey).Error("restore previous settings")
	}
}
