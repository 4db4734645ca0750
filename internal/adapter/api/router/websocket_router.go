package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo) {
	e.GET("/v1/ws", handler.GetWebSocketHandler().Connect)
}
