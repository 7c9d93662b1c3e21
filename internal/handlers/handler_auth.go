package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/fintrackhq/fintrack_backend/internal/platform/config"
	"github.com/fintrackhq/fintrack_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService portssvc.UserSvcFacade
	oauthSvc    portssvc.GoogleOAuthSvcFacade
	cfg         *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, oauthSvc portssvc.GoogleOAuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService: us,
		oauthSvc:    oauthSvc,
		cfg:         cfg,
	}
}

// registerAuthRoutes sets up the authentication routes. Login and register are
// rate limited per client IP; the rest of the group needs a valid access token.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.GoogleOAuth, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
		auth.POST("/google/exchange-code", h.exchangeGoogleCode)

		authed := auth.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
		{
			authed.GET("", h.currentUser)
			authed.PUT("/profile", h.updateProfile)
		}
	}
}

// issueTokenPair generates an access token and rotates the refresh token for the
// user, setting the refresh cookie on the response. Returns the access token.
func (h *authHandler) issueTokenPair(c *gin.Context, userID string) (string, error) {
	accessToken, err := utils.GenerateJWT(userID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		return "", err
	}

	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", err
	}
	expiry := time.Now().Add(h.cfg.RefreshTokenExpiryDuration)
	if err := h.userService.StoreRefreshToken(c.Request.Context(), userID, rawRefreshToken, expiry); err != nil {
		return "", err
	}

	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		rawRefreshToken,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
	return accessToken, nil
}

func (h *authHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} MsgResponse "Invalid input or email already registered"
// @Router /api/auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Please include a valid name, email and a password of 6 or more characters")
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	token, err := h.issueTokenPair(c, user.UserID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue tokens after registration", slog.String("error", err.Error()))
		respondMsg(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} MsgResponse "Invalid request body"
// @Failure 401 {object} MsgResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Please include a valid email and password")
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Uniform response; never reveals whether the email exists.
		respondMsg(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.issueTokenPair(c, user.UserID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue tokens after login", slog.String("error", err.Error()))
		respondMsg(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// currentUser godoc
// @Summary Get current user
// @Description Returns the authenticated user's details.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/auth [get]
func (h *authHandler) currentUser(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update profile
// @Description Updates the authenticated user's name, company name or logo.
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/auth/profile [put]
func (h *authHandler) updateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// refresh godoc
// @Summary Refresh access token
// @Description Rotates the refresh token cookie and returns a fresh access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} MsgResponse "Missing, unknown or expired refresh token"
// @Router /api/auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	rawToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || rawToken == "" {
		respondMsg(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	user, err := h.userService.UserByRefreshToken(c.Request.Context(), rawToken)
	if err != nil {
		h.clearRefreshCookie(c)
		respondMsg(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	token, err := h.issueTokenPair(c, user.UserID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to rotate tokens", slog.String("error", err.Error()))
		respondMsg(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: token})
}

// logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} MsgResponse
// @Router /api/auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if rawToken, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil && rawToken != "" {
		if user, err := h.userService.UserByRefreshToken(c.Request.Context(), rawToken); err == nil {
			_ = h.userService.ClearRefreshToken(c.Request.Context(), user.UserID)
		}
	}
	h.clearRefreshCookie(c)
	respondMsg(c, http.StatusOK, "Logged out")
}

// exchangeGoogleCode godoc
// @Summary Google login
// @Description Exchanges a Google authorization code, finds or creates the matching user, and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse "Code exchange or token validation failed"
// @Router /api/auth/google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Authorization code is required")
		return
	}

	identity, err := h.oauthSvc.ExchangeAndVerify(c.Request.Context(), req.Code)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		respondMsg(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	user, err := h.userService.FindOrCreateOAuthUser(c.Request.Context(), identity.Name, identity.Email)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	token, err := h.issueTokenPair(c, user.UserID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue tokens after Google login", slog.String("error", err.Error()))
		respondMsg(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}
