package database

import (
	"errors"

	"gorm.io/gorm"

	"eccli/models"
)

func GetQuestKeys(year, day int) (*models.QuestKeys, error) {
	if DB == nil {
		return nil, ErrUnavailable
	}
	var keys models.QuestKeys
	err := DB.
		Where(&models.QuestKeys{Year: year, Day: day}).
		First(&keys).
		Error
	if err != nil {
		return nil, err
	}
	return &keys, nil
}

// StoreQuestKeys caches fetched keys, replacing any earlier row for the
// same quest so newly unlocked parts land in the cache.
func StoreQuestKeys(keys *models.QuestKeys) error {
	if DB == nil {
		return ErrUnavailable
	}
	var existing models.QuestKeys
	err := DB.
		Where(&models.QuestKeys{Year: keys.Year, Day: keys.Day}).
		First(&existing).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DB.Create(keys).Error
	}
	if err != nil {
		return err
	}
	keys.ID = existing.ID
	return DB.
		Model(&models.QuestKeys{}).
		Where("id = ?", existing.ID).
		Select("key1", "key2", "key3", "fetched_at").
		Updates(keys).
		Error
}
