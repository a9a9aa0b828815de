package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codingtracker/backend/internal/user"
)

const INVALID_REQUEST = "invalid request"

type AuthService interface {
	Register(u user.User) (*user.User, error)
	Login(req user.LoginRequest) (*user.TokenResponse, error)
}

type UserHandler struct {
	service AuthService
}

func NewUserHandler(service AuthService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/register", h.RegisterHandler)
	e.POST("/login", h.LoginHandler)
}

func (h *UserHandler) RegisterHandler(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := h.service.Register(u)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registered successfully",
		"user":    created,
	})
}

func (h *UserHandler) LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := h.service.Login(req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
