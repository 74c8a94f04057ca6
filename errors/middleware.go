package errors

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/mealplan/mealplan"
)

func CustomHTTPErrorHandler(err error, c echo.Context) {
	e := HttpError{}
	if errors.As(err, &e) {
		c.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(e.Code, err.Error()), c)
		return
	}
	if errors.Is(err, mealplan.ErrInvalidProfile) {
		c.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(BadRequest.Code, err.Error()), c)
		return
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}
