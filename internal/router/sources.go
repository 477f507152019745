package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/auth"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage"
	"github.com/labstack/echo/v4"
)

type SourcesRouter struct {
	e       *echo.Echo
	sources storage.SourceStore
	issuer  *auth.JWTIssuer
}

func NewSourcesRouter(e *echo.Echo, sources storage.SourceStore, issuer *auth.JWTIssuer) *SourcesRouter {
	return &SourcesRouter{
		e:       e,
		sources: sources,
		issuer:  issuer,
	}
}

func (r *SourcesRouter) Bind() {
	g := r.e.Group("/api/sources", auth.Middleware(r.issuer))
	g.GET("", r.listHandler)
	g.POST("", r.createHandler)
	g.PUT("/:id", r.updateHandler)
	g.DELETE("/:id", r.deleteHandler)
}

func (r *SourcesRouter) listHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	sources, err := r.sources.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"sources": sources,
	})
}

type sourceRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active paused"`
}

func (r *SourcesRouter) createHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req sourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	source := domain.ContentSource{
		UserID:      userID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Status:      domain.SourceActive,
	}

	id, err := r.sources.Create(c.Request().Context(), source)
	if err != nil {
		return err
	}
	source.ID = id

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"source":  source,
	})
}

func (r *SourcesRouter) updateHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidation("invalid source id")
	}

	var req sourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	existing, err := r.sources.GetByID(c.Request().Context(), sourceID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return apperr.NewForbidden("content source belongs to another user")
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.Description = req.Description
	if req.Status != "" {
		existing.Status = domain.SourceStatus(req.Status)
	}

	if err := r.sources.Update(c.Request().Context(), *existing); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"source":  existing,
	})
}

func (r *SourcesRouter) deleteHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidation("invalid source id")
	}

	existing, err := r.sources.GetByID(c.Request().Context(), sourceID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return apperr.NewForbidden("content source belongs to another user")
	}

	if err := r.sources.Delete(c.Request().Context(), sourceID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
