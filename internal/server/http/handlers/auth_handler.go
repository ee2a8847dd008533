package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bakery/internal/server/http/dto"
	"github.com/polkiloo/bakery/internal/server/http/middleware"
)

// AuthHandler processes admin login and session checks.
type AuthHandler struct {
	facade AuthFacade
	cookie *middleware.SessionCookie
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, cookie *middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{facade: facade, cookie: cookie}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginResponse{Success: false})
		return
	}

	sess, ok, err := h.facade.Login(c.Request.Context(), middleware.CurrentSession(c), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, dto.LoginResponse{Success: false})
		return
	}

	h.cookie.Write(c, sess)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true})
}

// CheckAuth handles GET /check-auth.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: h.facade.CheckAuth(middleware.CurrentSession(c))})
}
