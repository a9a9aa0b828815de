package roadmap

import (
	"github.com/google/uuid"

	"github.com/codingtracker/backend/pkg/db"
)

type EntryRepository interface {
	Save(entry *Entry) error
	FindByUser(userID uint) ([]Entry, error)
}

type GormEntryRepository struct{}

func NewEntryRepository() *GormEntryRepository {
	return &GormEntryRepository{}
}

func (r *GormEntryRepository) Save(entry *Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return db.DB.Create(entry).Error
}

func (r *GormEntryRepository) FindByUser(userID uint) ([]Entry, error) {
	var entries []Entry
	err := db.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
