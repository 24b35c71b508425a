package services

import (
	"tourgen/internal/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	Storage repositories.StorageRepository
	Bridge  StorageBridgeService
}

// NewDbServices constructs the service container using repositories backed by db.
// secrets may be nil.
func NewDbServices(db *gorm.DB, secrets SecretStore, log logrus.FieldLogger) *DbServices {
	storageRepo := repositories.NewStorageRepository(db)

	return &DbServices{
		Storage: storageRepo,
		Bridge:  NewStorageBridgeService(storageRepo, secrets, log),
	}
}
