package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/videoflix-server/internal/api/http/response"
	"github.com/dtroode/videoflix-server/internal/apierrors"
	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

// Auth handles HTTP endpoints for account lifecycle and sessions.
type Auth struct {
	authService  AuthService
	tokenService TokenService
	cookies      CookieConfig
	logger       *logger.Logger
	now          func() time.Time
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokenService TokenService, cookies CookieConfig, logger *logger.Logger) *Auth {
	return &Auth{
		authService:  authService,
		tokenService: tokenService,
		cookies:      cookies,
		logger:       logger,
		now:          time.Now,
	}
}

type accountResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type registerResponse struct {
	User  accountResponse `json:"user"`
	Token string          `json:"token"`
}

// Register creates an inactive account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := response.ReadJSON(w, r, &req); err != nil {
		response.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, validationError(err))
		return
	}

	result, err := h.authService.Register(r.Context(), model.RegisterParams{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmedPassword,
	})
	if err != nil {
		handleError(w, h.logger, "register", err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, registerResponse{
		User: accountResponse{
			ID:    result.Account.ID,
			Email: result.Account.Email,
		},
		Token: result.Token,
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

// Activate consumes an activation link.
func (h *Auth) Activate(w http.ResponseWriter, r *http.Request) {
	err := h.authService.Activate(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "token"))
	if err != nil {
		handleError(w, h.logger, "activate", err)
		return
	}

	response.WriteJSON(w, http.StatusOK, messageResponse{Message: "Account successfully activated."})
}

// RequestPasswordReset sends a password reset link.
func (h *Auth) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := response.ReadJSON(w, r, &req); err != nil {
		response.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, validationError(err))
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		handleError(w, h.logger, "password reset", err)
		return
	}

	response.WriteJSON(w, http.StatusOK, detailResponse{Detail: "An email has been sent to reset your password."})
}

// ConfirmPasswordReset sets a new password through a reset link.
func (h *Auth) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordConfirmRequest
	if err := response.ReadJSON(w, r, &req); err != nil {
		response.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, validationError(err))
		return
	}

	err := h.authService.ConfirmPasswordReset(r.Context(), model.ResetParams{
		UID:             chi.URLParam(r, "uid"),
		Token:           chi.URLParam(r, "token"),
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleError(w, h.logger, "password confirm", err)
		return
	}

	response.WriteJSON(w, http.StatusOK, detailResponse{Detail: "Your Password has been successfully reset."})
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Detail string    `json:"detail"`
	User   loginUser `json:"user"`
}

// Login authenticates credentials and sets both token cookies.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := response.ReadJSON(w, r, &req); err != nil {
		response.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, validationError(err))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, "login", err)
		return
	}

	now := h.now()
	access, refresh := result.Tokens.Access, result.Tokens.Refresh
	http.SetCookie(w, buildCookie(h.cookies, model.AccessTokenCookie, access.Value, ttlUntil(access.ExpiresAt, now), now))
	http.SetCookie(w, buildCookie(h.cookies, model.RefreshTokenCookie, refresh.Value, ttlUntil(refresh.ExpiresAt, now), now))

	response.WriteJSON(w, http.StatusOK, loginResponse{
		Detail: "Login successful",
		User: loginUser{
			ID:       result.Account.ID,
			Username: result.Account.Username,
		},
	})
}

type refreshResponse struct {
	Detail string `json:"detail"`
	Access string `json:"access"`
}

// Refresh issues a new access token from the refresh cookie.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := refreshCookie(r)
	if !ok {
		response.WriteError(w, apierrors.NewErrMissingToken())
		return
	}

	access, err := h.tokenService.Refresh(r.Context(), refreshToken)
	if errors.Is(err, model.ErrInvalidToken) {
		response.WriteError(w, apierrors.NewErrInvalidToken(http.StatusUnauthorized, err))
		return
	}
	if err != nil {
		handleError(w, h.logger, "token refresh", err)
		return
	}

	now := h.now()
	http.SetCookie(w, buildCookie(h.cookies, model.AccessTokenCookie, access.Value, ttlUntil(access.ExpiresAt, now), now))

	response.WriteJSON(w, http.StatusOK, refreshResponse{
		Detail: "Token refreshed",
		Access: access.Value,
	})
}

// Logout revokes the refresh cookie and clears both token cookies.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := refreshCookie(r)
	if !ok {
		response.WriteError(w, apierrors.NewErrMissingToken())
		return
	}

	err := h.tokenService.Revoke(r.Context(), refreshToken)
	if errors.Is(err, model.ErrInvalidToken) {
		response.WriteError(w, apierrors.NewErrInvalidToken(http.StatusBadRequest, err))
		return
	}
	if err != nil {
		handleError(w, h.logger, "logout", err)
		return
	}

	http.SetCookie(w, buildDeletionCookie(h.cookies, model.AccessTokenCookie))
	http.SetCookie(w, buildDeletionCookie(h.cookies, model.RefreshTokenCookie))

	response.WriteJSON(w, http.StatusOK, detailResponse{
		Detail: "Logout successful! All Tokens will be deleted. Refresh token is now invalid.",
	})
}

func refreshCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(model.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
