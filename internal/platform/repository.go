package platform

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codingtracker/backend/pkg/db"
)

type RecordRepository interface {
	Find(userID uint, platform string) (*Record, error)
	FindAll(userID uint) ([]Record, error)
	FindCustom(userID uint) ([]Record, error)
	FindByID(id string) (*Record, error)
	Upsert(rec *Record) (*Record, error)
	Delete(id string) error
}

type GormRecordRepository struct{}

func NewRecordRepository() *GormRecordRepository {
	return &GormRecordRepository{}
}

func (r *GormRecordRepository) Find(userID uint, platform string) (*Record, error) {
	var rec Record
	result := db.DB.Where("user_id = ? AND platform = ?", userID, platform).First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &rec, nil
}

func (r *GormRecordRepository) FindAll(userID uint) ([]Record, error) {
	var records []Record
	if err := db.DB.Where("user_id = ?", userID).Order("platform").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormRecordRepository) FindCustom(userID uint) ([]Record, error) {
	var records []Record
	err := db.DB.
		Where("user_id = ? AND platform NOT IN ?", userID, FixedPlatforms()).
		Order("platform").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormRecordRepository) FindByID(id string) (*Record, error) {
	var rec Record
	result := db.DB.Where("id = ?", id).First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &rec, nil
}

// Upsert inserts the record or, when a row for (user_id, platform) already
// exists, overwrites its mutable columns in a single statement. The
// ON CONFLICT clause makes concurrent writes for the same key serialize in
// Postgres instead of interleaving.
func (r *GormRecordRepository) Upsert(rec *Record) (*Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.UpdatedAt = time.Now()

	err := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "easy_solved", "medium_solved", "hard_solved",
			"total_solved", "image_url", "updated_at",
		}),
	}).Create(rec).Error
	if err != nil {
		return nil, err
	}

	// Re-read: on the conflict path the stored row keeps its original id.
	return r.Find(rec.UserID, rec.Platform)
}

func (r *GormRecordRepository) Delete(id string) error {
	return db.DB.Where("id = ?", id).Delete(&Record{}).Error
}
