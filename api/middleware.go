package api

import (
	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func RouteSkipper(routes []string) middleware.Skipper {
	routesMap := map[string]struct{}{}
	for _, route := range routes {
		routesMap[route] = struct{}{}
	}

	return func(ec echo.Context) bool {
		_, ok := routesMap[ec.Path()]
		return ok
	}
}

// RequestLogger wraps the echozap request logger with a skipper, which
// the upstream middleware doesn't support.
func RequestLogger(logger *zap.Logger, skipper middleware.Skipper) echo.MiddlewareFunc {
	zapMiddleware := echozap.ZapLogger(logger)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := zapMiddleware(next)
		return func(ec echo.Context) error {
			if skipper(ec) {
				return next(ec)
			}
			return logged(ec)
		}
	}
}
