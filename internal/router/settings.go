package router

import (
	"net/http"

	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/auth"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage"
	"github.com/labstack/echo/v4"
)

type SettingsRouter struct {
	e      *echo.Echo
	users  storage.UserStore
	issuer *auth.JWTIssuer
}

func NewSettingsRouter(e *echo.Echo, users storage.UserStore, issuer *auth.JWTIssuer) *SettingsRouter {
	return &SettingsRouter{
		e:      e,
		users:  users,
		issuer: issuer,
	}
}

func (r *SettingsRouter) Bind() {
	g := r.e.Group("/api/settings", auth.Middleware(r.issuer))
	g.GET("", r.getHandler)
	g.PUT("", r.updateHandler)
	g.PUT("/api-key", r.apiKeyHandler)
}

func (r *SettingsRouter) getHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	user, err := r.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"settings": user.Prefs.WithDefaults(),
	})
}

// updateRequest uses pointers so absent fields stay untouched.
type updateRequest struct {
	Tone           *string  `json:"tone"`
	Length         *string  `json:"length"`
	Format         *string  `json:"format"`
	MaxArticles    *int     `json:"maxArticles" validate:"omitempty,min=1"`
	IncludeSummary *bool    `json:"includeSummary"`
	Company        *string  `json:"company"`
	Timezone       *string  `json:"timezone"`
	Language       *string  `json:"language"`
	CustomPrompt   *string  `json:"customPrompt"`
	Model          *string  `json:"model"`
	Temperature    *float64 `json:"temperature" validate:"omitempty,min=0,max=2"`
	MaxTokens      *int     `json:"maxTokens" validate:"omitempty,min=1"`
}

func (r *SettingsRouter) updateHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req updateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := r.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	prefs := user.Prefs
	if req.Tone != nil {
		tone := domain.Tone(*req.Tone)
		if !tone.Valid() {
			return apperr.NewValidation("unknown tone value")
		}
		prefs.Tone = tone
	}
	if req.Length != nil {
		length := domain.Length(*req.Length)
		if !length.Valid() {
			return apperr.NewValidation("unknown length value")
		}
		prefs.Length = length
	}
	if req.Format != nil {
		format := domain.Format(*req.Format)
		if !format.Valid() {
			return apperr.NewValidation("unknown format value")
		}
		prefs.Format = format
	}
	if req.MaxArticles != nil {
		prefs.MaxArticles = *req.MaxArticles
	}
	if req.IncludeSummary != nil {
		prefs.IncludeSummary = *req.IncludeSummary
	}
	if req.Company != nil {
		prefs.Company = *req.Company
	}
	if req.Timezone != nil {
		prefs.Timezone = *req.Timezone
	}
	if req.Language != nil {
		prefs.Language = *req.Language
	}
	if req.CustomPrompt != nil {
		prefs.CustomPrompt = *req.CustomPrompt
	}
	if req.Model != nil {
		prefs.Model = *req.Model
	}
	if req.Temperature != nil {
		prefs.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		prefs.MaxTokens = *req.MaxTokens
	}

	if err := r.users.UpdatePrefs(c.Request().Context(), userID, prefs); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"settings": prefs.WithDefaults(),
	})
}

type apiKeyRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}

func (r *SettingsRouter) apiKeyHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req apiKeyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := r.users.UpdateOpenAIKey(c.Request().Context(), userID, req.APIKey); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
