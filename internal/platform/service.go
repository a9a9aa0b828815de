package platform

import (
	"net/http"
	"strings"

	"github.com/codingtracker/backend/internal/apperrors"
)

type StatsService struct {
	repo  RecordRepository
	cache StatsCache
}

// NewStatsService wires the stats service. cache may be nil, in which case
// every read goes to the database.
func NewStatsService(repo RecordRepository, cache StatsCache) *StatsService {
	return &StatsService{repo: repo, cache: cache}
}

// GetPlatformStats returns the caller's stats for one platform. A missing
// record is the initial state, not an error: the zero view carries the
// caller's login username so the frontend can prefill it.
func (s *StatsService) GetPlatformStats(userID uint, loginUsername, platform string) (*StatsView, error) {
	if s.cache != nil {
		if view, ok := s.cache.GetView(userID, platform); ok {
			return view, nil
		}
	}

	rec, err := s.repo.Find(userID, platform)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Fetch error", err)
	}

	var view *StatsView
	if rec == nil {
		view = &StatsView{Username: loginUsername}
	} else {
		view = viewFromRecord(rec)
	}

	if s.cache != nil {
		s.cache.SetView(userID, platform, view)
	}
	return view, nil
}

// SavePlatformStats is the single write path for fixed and custom
// platforms. Counts are clamped to non-negative integers and the total is
// always recomputed here; a client-supplied total is never stored.
func (s *StatsService) SavePlatformStats(userID uint, req *StatsRequest) (*Record, error) {
	easy := clampCount(req.EasySolved)
	medium := clampCount(req.MediumSolved)
	hard := clampCount(req.HardSolved)

	rec := &Record{
		UserID:       userID,
		Platform:     req.Platform,
		Username:     req.Username,
		EasySolved:   easy,
		MediumSolved: medium,
		HardSolved:   hard,
		TotalSolved:  easy + medium + hard,
		ImageURL:     req.ImageURL,
	}

	saved, err := s.repo.Upsert(rec)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Save failed", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(userID, req.Platform)
	}
	return saved, nil
}

// SaveCustomPlatform validates the user-chosen platform name before going
// through the common write path. Fixed identifiers are reserved: letting a
// custom POST name "leetcode" would overwrite the fixed row with a record
// no custom-platform read or delete could ever reach.
func (s *StatsService) SaveCustomPlatform(userID uint, req *StatsRequest) (*Record, error) {
	name := strings.TrimSpace(req.Platform)
	username := strings.TrimSpace(req.Username)
	if name == "" || username == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Platform and username required", nil)
	}
	if IsFixed(strings.ToLower(name)) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Platform name is reserved", nil)
	}
	req.Platform = name
	req.Username = username
	return s.SavePlatformStats(userID, req)
}

func (s *StatsService) ListCustomPlatforms(userID uint) ([]Record, error) {
	records, err := s.repo.FindCustom(userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Fetch failed", err)
	}
	return records, nil
}

// DeleteCustomPlatform removes one of the caller's custom platform rows.
// Ownership is re-checked here against the stored record, so knowing a
// record id is never enough to delete another user's data. Fixed platforms
// have no delete transition; they can only be reset by upserting zeros.
func (s *StatsService) DeleteCustomPlatform(userID uint, recordID string) error {
	rec, err := s.repo.FindByID(recordID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "Delete failed", err)
	}
	if rec == nil {
		return apperrors.NewAppError(http.StatusNotFound, "Platform not found", nil)
	}
	if rec.UserID != userID {
		return apperrors.NewAppError(http.StatusForbidden, "You do not own this platform", nil)
	}
	if IsFixed(rec.Platform) {
		return apperrors.NewAppError(http.StatusBadRequest, "Cannot delete a fixed platform", nil)
	}

	if err := s.repo.Delete(recordID); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "Delete failed", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(userID, rec.Platform)
	}
	return nil
}

// GetOverview returns every record the caller owns plus totals summed
// across platforms.
func (s *StatsService) GetOverview(userID uint) (*Overview, error) {
	if s.cache != nil {
		if overview, ok := s.cache.GetOverview(userID); ok {
			return overview, nil
		}
	}

	records, err := s.repo.FindAll(userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Fetch failed", err)
	}

	overview := &Overview{Platforms: records}
	for _, rec := range records {
		overview.Totals.EasySolved += rec.EasySolved
		overview.Totals.MediumSolved += rec.MediumSolved
		overview.Totals.HardSolved += rec.HardSolved
		overview.Totals.TotalSolved += rec.TotalSolved
	}

	if s.cache != nil {
		s.cache.SetOverview(userID, overview)
	}
	return overview, nil
}

func viewFromRecord(rec *Record) *StatsView {
	updatedAt := rec.UpdatedAt
	return &StatsView{
		Username:     rec.Username,
		EasySolved:   rec.EasySolved,
		MediumSolved: rec.MediumSolved,
		HardSolved:   rec.HardSolved,
		TotalSolved:  rec.TotalSolved,
		ImageURL:     rec.ImageURL,
		UpdatedAt:    &updatedAt,
	}
}

func clampCount(n Count) int {
	if n < 0 {
		return 0
	}
	return int(n)
}
