package platform

import (
	"encoding/json"
	"strconv"
	"time"
)

// The four fixed platforms. Custom platforms live in the same table under
// any other name the owning user picks.
const (
	Leetcode   = "leetcode"
	Codeforces = "codeforces"
	Codechef   = "codechef"
	Hackerrank = "hackerrank"
)

var fixedPlatforms = []string{Leetcode, Codeforces, Codechef, Hackerrank}

func IsFixed(name string) bool {
	for _, p := range fixedPlatforms {
		if p == name {
			return true
		}
	}
	return false
}

func FixedPlatforms() []string {
	return fixedPlatforms
}

// Record is the single per-user, per-platform stats row. The compound
// unique index on (user_id, platform) is what makes writes an upsert:
// two users may both own a platform named "GFG" without colliding, while
// one user can never hold two rows for the same platform.
type Record struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_user_platform" json:"userId"`
	Platform     string    `gorm:"not null;uniqueIndex:idx_user_platform" json:"platform"`
	Username     string    `gorm:"not null" json:"username"`
	EasySolved   int       `json:"easySolved"`
	MediumSolved int       `json:"mediumSolved"`
	HardSolved   int       `json:"hardSolved"`
	TotalSolved  int       `json:"totalSolved"`
	ImageURL     string    `json:"imageUrl"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Record) TableName() string {
	return "platform_records"
}

// Count accepts JSON numbers and numeric strings; anything else decodes
// to zero. The original frontend sends counts as strings on some forms.
type Count int

func (n *Count) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	switch t := v.(type) {
	case float64:
		*n = Count(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Count(f)
	default:
		*n = 0
	}
	return nil
}

// StatsRequest is the write payload for both fixed and custom platforms.
// Any client-supplied total is ignored; it is recomputed on save.
type StatsRequest struct {
	Platform     string `json:"platform"`
	Username     string `json:"username"`
	EasySolved   Count  `json:"easySolved"`
	MediumSolved Count  `json:"mediumSolved"`
	HardSolved   Count  `json:"hardSolved"`
	ImageURL     string `json:"imageUrl"`
}

// StatsView is the read shape for a single platform. A user with no record
// yet gets the zero view with their login username filled in.
type StatsView struct {
	Username     string     `json:"username"`
	EasySolved   int        `json:"easySolved"`
	MediumSolved int        `json:"mediumSolved"`
	HardSolved   int        `json:"hardSolved"`
	TotalSolved  int        `json:"totalSolved"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type OverviewTotals struct {
	EasySolved   int `json:"easySolved"`
	MediumSolved int `json:"mediumSolved"`
	HardSolved   int `json:"hardSolved"`
	TotalSolved  int `json:"totalSolved"`
}

type Overview struct {
	Platforms []Record       `json:"platforms"`
	Totals    OverviewTotals `json:"totals"`
}
