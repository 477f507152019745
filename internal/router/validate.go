package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// bindAndValidate decodes the JSON body into req and runs struct validation.
// Failures surface as 400s through the global error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := validate.Struct(req); err != nil {
		return apperr.NewValidationWrap("invalid request", err)
	}
	return nil
}
