package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/auth"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/newsletter"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage"
	"github.com/labstack/echo/v4"
)

type NewslettersRouter struct {
	e           *echo.Echo
	newsletters storage.NewsletterStore
	generator   *newsletter.Generator
	analyzer    *newsletter.Analyzer
	issuer      *auth.JWTIssuer
}

func NewNewslettersRouter(
	e *echo.Echo,
	newsletters storage.NewsletterStore,
	generator *newsletter.Generator,
	analyzer *newsletter.Analyzer,
	issuer *auth.JWTIssuer,
) *NewslettersRouter {
	return &NewslettersRouter{
		e:           e,
		newsletters: newsletters,
		generator:   generator,
		analyzer:    analyzer,
		issuer:      issuer,
	}
}

func (r *NewslettersRouter) Bind() {
	g := r.e.Group("/api/newsletters", auth.Middleware(r.issuer))
	g.POST("/generate", r.generateHandler)
	g.POST("/analyze", r.analyzeHandler)
	g.GET("", r.listHandler)
	g.GET("/:id", r.getHandler)
	g.DELETE("/:id", r.deleteHandler)
}

func (r *NewslettersRouter) generateHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req domain.GenerationRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	result, err := r.generator.Generate(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}

	resp := map[string]any{
		"success":             true,
		"newsletter":          result.Newsletter,
		"personalizationUsed": result.PersonalizationUsed,
	}
	if result.Settings != nil {
		resp["settings"] = result.Settings
	}

	return c.JSON(http.StatusOK, resp)
}

type analyzeRequest struct {
	NewsletterID string `json:"newsletterId" validate:"required,uuid"`
}

func (r *NewslettersRouter) analyzeHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req analyzeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	newsletterID, err := uuid.Parse(req.NewsletterID)
	if err != nil {
		return apperr.NewValidation("invalid newsletter id")
	}

	analysis, err := r.analyzer.Analyze(c.Request().Context(), userID, newsletterID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"analysis": analysis,
	})
}

func (r *NewslettersRouter) listHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	newsletters, err := r.newsletters.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"newsletters": newsletters,
	})
}

func (r *NewslettersRouter) getHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	newsletterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidation("invalid newsletter id")
	}

	n, err := r.newsletters.GetByID(c.Request().Context(), newsletterID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return apperr.NewForbidden("newsletter belongs to another user")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"newsletter": n,
	})
}

func (r *NewslettersRouter) deleteHandler(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	newsletterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidation("invalid newsletter id")
	}

	n, err := r.newsletters.GetByID(c.Request().Context(), newsletterID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return apperr.NewForbidden("newsletter belongs to another user")
	}

	if err := r.newsletters.Delete(c.Request().Context(), newsletterID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
