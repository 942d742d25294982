package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielessuu/backend-sd3/pkg/resp"
	"github.com/danielessuu/backend-sd3/services"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "username and password are required")
		return
	}

	pair, err := a.Service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// POST /token/refresh
func (a *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "refresh token is required")
		return
	}

	pair, err := a.Service.Refresh(req.Refresh)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			resp.Unauthorized(c, "invalid refresh token")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}
