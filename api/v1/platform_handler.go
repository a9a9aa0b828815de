package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/codingtracker/backend/api/middleware"
	"github.com/codingtracker/backend/internal/platform"
)

type PlatformStatsService interface {
	GetPlatformStats(userID uint, loginUsername, platformName string) (*platform.StatsView, error)
	SavePlatformStats(userID uint, req *platform.StatsRequest) (*platform.Record, error)
	SaveCustomPlatform(userID uint, req *platform.StatsRequest) (*platform.Record, error)
	ListCustomPlatforms(userID uint) ([]platform.Record, error)
	DeleteCustomPlatform(userID uint, recordID string) error
	GetOverview(userID uint) (*platform.Overview, error)
}

type PlatformHandler struct {
	service PlatformStatsService
}

func NewPlatformHandler(service PlatformStatsService) *PlatformHandler {
	return &PlatformHandler{service: service}
}

// RegisterRoutes wires the stats endpoints onto an authenticated group.
// Static routes are registered alongside the :platform wildcard; echo
// matches static paths first, so /custom-platforms and /stats/overview
// never collide with the platform parameter.
func (h *PlatformHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/custom-platforms", h.ListCustomPlatformsHandler)
	g.POST("/custom-platforms", h.SaveCustomPlatformHandler)
	g.DELETE("/custom-platforms/:id", h.DeleteCustomPlatformHandler)
	g.GET("/stats/overview", h.OverviewHandler)
	g.GET("/:platform", h.GetStatsHandler)
	g.POST("/:platform", h.SaveStatsHandler)
}

func (h *PlatformHandler) GetStatsHandler(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	name := strings.ToLower(c.Param("platform"))
	if !platform.IsFixed(name) {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown platform")
	}

	view, err := h.service.GetPlatformStats(claims.Id, claims.Username, name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *PlatformHandler) SaveStatsHandler(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	name := strings.ToLower(c.Param("platform"))
	if !platform.IsFixed(name) {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown platform")
	}

	var req platform.StatsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	// The route decides the platform namespace, never the body.
	req.Platform = name

	rec, err := h.service.SavePlatformStats(claims.Id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Saved successfully",
		"data":    rec,
	})
}

func (h *PlatformHandler) ListCustomPlatformsHandler(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	records, err := h.service.ListCustomPlatforms(claims.Id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

func (h *PlatformHandler) SaveCustomPlatformHandler(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	var req platform.StatsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	rec, err := h.service.SaveCustomPlatform(claims.Id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Saved successfully",
		"data":    rec,
	})
}

func (h *PlatformHandler) DeleteCustomPlatformHandler(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	if err := h.service.DeleteCustomPlatform(claims.Id, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Platform deleted successfully",
	})
}

func (h *PlatformHandler) OverviewHandler(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	overview, err := h.service.GetOverview(claims.Id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
