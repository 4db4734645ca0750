package handler

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "familymarket/internal/infrastructure/websocket"
	"familymarket/pkg/logger"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin is fine here; the token query parameter is the gate.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub        *ws.Hub
	authClient *auth.Client
}

var webSocketHandler *WebSocketHandler

func SetupWebSocketHandler(hub *ws.Hub, authClient *auth.Client) {
	webSocketHandler = &WebSocketHandler{
		hub:        hub,
		authClient: authClient,
	}
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

// Connect upgrades to a websocket for live notification delivery. Browsers
// cannot set headers on websocket requests, so the ID token arrives as a
// query parameter.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	idToken := c.QueryParam("token")
	if idToken == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "token query parameter is required")
	}

	token, err := h.authClient.VerifyIDToken(c.Request().Context(), idToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &ws.Client{
		UserID: token.UID,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}
