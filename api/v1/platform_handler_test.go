package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/codingtracker/backend/internal/platform"
	"github.com/codingtracker/backend/internal/user"
)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetPlatformStats(userID uint, loginUsername, platformName string) (*platform.StatsView, error) {
	args := m.Called(userID, loginUsername, platformName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.StatsView), args.Error(1)
}

func (m *MockStatsService) SavePlatformStats(userID uint, req *platform.StatsRequest) (*platform.Record, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Record), args.Error(1)
}

func (m *MockStatsService) SaveCustomPlatform(userID uint, req *platform.StatsRequest) (*platform.Record, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Record), args.Error(1)
}

func (m *MockStatsService) ListCustomPlatforms(userID uint) ([]platform.Record, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]platform.Record), args.Error(1)
}

func (m *MockStatsService) DeleteCustomPlatform(userID uint, recordID string) error {
	args := m.Called(userID, recordID)
	return args.Error(0)
}

func (m *MockStatsService) GetOverview(userID uint) (*platform.Overview, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Overview), args.Error(1)
}

// newStatsContext builds an echo context carrying the claims the JWT
// middleware would have attached.
func newStatsContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &jwt.Token{Claims: &user.JwtCustomClaims{Id: 1, Username: "ann"}})
	return c, rec
}

func TestGetStatsHandler_UnknownPlatform(t *testing.T) {
	mockService := &MockStatsService{}
	handler := NewPlatformHandler(mockService)

	c, _ := newStatsContext(t, http.MethodGet, "/atcoder", "")
	c.SetParamNames("platform")
	c.SetParamValues("atcoder")

	err := handler.GetStatsHandler(c)
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	mockService.AssertNotCalled(t, "GetPlatformStats")
}

func TestGetStatsHandler_FixedPlatform(t *testing.T) {
	mockService := &MockStatsService{}
	handler := NewPlatformHandler(mockService)

	view := &platform.StatsView{Username: "ann123", EasySolved: 5, MediumSolved: 3, HardSolved: 1, TotalSolved: 9}
	mockService.On("GetPlatformStats", uint(1), "ann", "leetcode").Return(view, nil)

	c, rec := newStatsContext(t, http.MethodGet, "/LeetCode", "")
	c.SetParamNames("platform")
	c.SetParamValues("LeetCode")

	err := handler.GetStatsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got platform.StatsView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ann123", got.Username)
	assert.Equal(t, 9, got.TotalSolved)
	mockService.AssertExpectations(t)
}

func TestSaveStatsHandler_RouteOverridesBodyPlatform(t *testing.T) {
	mockService := &MockStatsService{}
	handler := NewPlatformHandler(mockService)

	saved := &platform.Record{ID: "r1", Platform: "leetcode", TotalSolved: 9}
	mockService.On("SavePlatformStats", uint(1), mock.MatchedBy(func(r *platform.StatsRequest) bool {
		return r.Platform == "leetcode" && r.Username == "ann123"
	})).Return(saved, nil)

	body := `{"platform":"codeforces","username":"ann123","easySolved":5,"mediumSolved":3,"hardSolved":1}`
	c, rec := newStatsContext(t, http.MethodPost, "/leetcode", body)
	c.SetParamNames("platform")
	c.SetParamValues("leetcode")

	err := handler.SaveStatsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Saved successfully")
	mockService.AssertExpectations(t)
}

func TestSaveStatsHandler_UnknownPlatform(t *testing.T) {
	mockService := &MockStatsService{}
	handler := NewPlatformHandler(mockService)

	c, _ := newStatsContext(t, http.MethodPost, "/atcoder", `{"username":"x"}`)
	c.SetParamNames("platform")
	c.SetParamValues("atcoder")

	err := handler.SaveStatsHandler(c)
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	mockService.AssertNotCalled(t, "SavePlatformStats")
}

func TestDeleteCustomPlatformHandler(t *testing.T) {
	mockService := &MockStatsService{}
	handler := NewPlatformHandler(mockService)

	mockService.On("DeleteCustomPlatform", uint(1), "c1").Return(nil)

	c, rec := newStatsContext(t, http.MethodDelete, "/custom-platforms/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	err := handler.DeleteCustomPlatformHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Platform deleted successfully")
	mockService.AssertExpectations(t)
}

func TestOverviewHandler(t *testing.T) {
	mockService := &MockStatsService{}
	handler := NewPlatformHandler(mockService)

	overview := &platform.Overview{
		Platforms: []platform.Record{{Platform: "leetcode", TotalSolved: 9}},
		Totals:    platform.OverviewTotals{EasySolved: 5, MediumSolved: 3, HardSolved: 1, TotalSolved: 9},
	}
	mockService.On("GetOverview", uint(1)).Return(overview, nil)

	c, rec := newStatsContext(t, http.MethodGet, "/stats/overview", "")

	err := handler.OverviewHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got platform.Overview
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 9, got.Totals.TotalSolved)
	mockService.AssertExpectations(t)
}
