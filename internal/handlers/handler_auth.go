package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/SscSPs/cashclose_app/internal/dto"
	"github.com/SscSPs/cashclose_app/internal/middleware"
	"github.com/SscSPs/cashclose_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, logout and session restore.
type authHandler struct {
	sessionService portssvc.SessionSvc
	cookieName     string
	secureCookie   bool
}

func newAuthHandler(ss portssvc.SessionSvc, cfg *config.Config) *authHandler {
	return &authHandler{
		sessionService: ss,
		cookieName:     cfg.SessionCookieName,
		secureCookie:   cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, ss portssvc.SessionSvc) {
	h := newAuthHandler(ss, cfg)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit, "cashclose:login")
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using 5-M", slog.String("error", err.Error()))
		loginLimiter, _ = middleware.NewMemoryLimiter("5-M", "cashclose:login")
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/session", h.session)
	}
}

// login godoc
// @Summary Log in with a shared secret
// @Description Exchanges a role secret for a signed session token. The token is also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Secret"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, err := h.sessionService.Login(c.Request.Context(), req.Secret)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredential) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
			return
		}
		respondError(c, logger, err, "Failed to log in")
		return
	}

	h.setSessionCookie(c, session.Token, time.Until(session.ExpiresAt))
	logger.Info("Session started", slog.String("role", session.Role.String()))
	c.JSON(http.StatusOK, dto.ToSessionResponse(session, true))
}

// logout godoc
// @Summary Log out
// @Description Clears the session cookie. Bearer tokens simply expire.
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// session godoc
// @Summary Restore the current session
// @Description Returns the role carried by the bearer token or session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *authHandler) session(c *gin.Context) {
	token, ok := middleware.ExtractToken(c, h.cookieName)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	session, err := h.sessionService.Restore(c.Request.Context(), token)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Session restore failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid session"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session, false))
}

func (h *authHandler) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.secureCookie, true)
}
