package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codingtracker/backend/api/middleware"
	"github.com/codingtracker/backend/internal/roadmap"
)

type RoadmapAskService interface {
	Ask(userID uint, topic string) (*roadmap.AskResponse, error)
	History(userID uint) ([]roadmap.Entry, error)
}

type RoadmapHandler struct {
	service RoadmapAskService
}

func NewRoadmapHandler(service RoadmapAskService) *RoadmapHandler {
	return &RoadmapHandler{service: service}
}

func (h *RoadmapHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/ask_ai", h.AskHandler)
	g.GET("/ai_history", h.HistoryHandler)
}

func (h *RoadmapHandler) AskHandler(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	var req roadmap.AskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := h.service.Ask(claims.Id, req.Topic)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RoadmapHandler) HistoryHandler(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	entries, err := h.service.History(claims.Id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
