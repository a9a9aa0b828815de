package roadmap

import "time"

// Entry is one saved roadmap generation, owned by the asking user.
type Entry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Question  string    `gorm:"not null" json:"question"`
	Answer    string    `gorm:"not null" json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Entry) TableName() string {
	return "roadmap_entries"
}

type AskRequest struct {
	Topic string `json:"topic"`
}

type AskResponse struct {
	Topic   string `json:"topic"`
	Roadmap string `json:"roadmap"`
}
