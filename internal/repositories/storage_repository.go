package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tourgen/internal/models"
)

// StorageRepository is a string key/value store with local-storage semantics:
// a missing key is not an error, writes replace the whole value.
type StorageRepository interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

type storageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepository{db: db}
}

func (r *storageRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	var item models.StorageItem
	if err := r.db.WithContext(ctx).Where("item_key = ?", key).Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return item.Value, true, nil
}

func (r *storageRepository) SetItem(ctx context.Context, key, value string) error {
	item := models.StorageItem{
		Key:   key,
		Value: value,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&item).Error
}

func (r *storageRepository) RemoveItem(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("item_key = ?", key).Delete(&models.StorageItem{}).Error
}

func (r *storageRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&models.StorageItem{}).Order("item_key").Pluck("item_key", &keys).Error
	return keys, err
}

func (r *storageRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.StorageItem{}).Error
}
