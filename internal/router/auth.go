package router

import (
	"errors"
	"net/http"

	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/auth"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage"
	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	e      *echo.Echo
	users  storage.UserStore
	issuer *auth.JWTIssuer
}

func NewAuthRouter(e *echo.Echo, users storage.UserStore, issuer *auth.JWTIssuer) *AuthRouter {
	return &AuthRouter{
		e:      e,
		users:  users,
		issuer: issuer,
	}
}

func (r *AuthRouter) Bind() {
	g := r.e.Group("/api/auth")
	g.POST("/register", r.registerHandler)
	g.POST("/login", r.loginHandler)
	g.GET("/me", r.meHandler, auth.Middleware(r.issuer))
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *AuthRouter) registerHandler(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	id, err := r.users.Create(c.Request().Context(), user)
	if err != nil {
		return err
	}
	user.ID = id

	token, err := r.issuer.Issue(&user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *AuthRouter) loginHandler(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := r.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		var nfe *apperr.NotFoundError
		if errors.As(err, &nfe) {
			// same answer for unknown email and wrong password
			return apperr.NewUnauthorized("invalid email or password")
		}
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return apperr.NewUnauthorized("invalid email or password")
	}

	token, err := r.issuer.Issue(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

func (r *AuthRouter) meHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	user, err := r.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"user":         user,
		"hasOpenAIKey": user.HasOpenAIKey(),
	})
}
