package server

import (
	"net/http"
	"time"

	"cloverfield-server/internal/engine"
	"cloverfield-server/pkg/api"
	"cloverfield-server/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game      *engine.GameService
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string

	updates chan api.ServerResponse
}

// NewClient создает клиента. Пустой token - новая сессия со случайным ID.
func NewClient(game *engine.GameService, conn *websocket.Conn, token string) *Client {
	if token == "" {
		token = uuid.NewString()
	}
	return &Client{
		Game:      game,
		Conn:      conn,
		Send:      make(chan api.ServerResponse, 256),
		SessionID: token,
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	// 1. ПОДПИСКА НА ОБНОВЛЕНИЯ
	c.updates = c.Game.Hub.Register(c.SessionID)
	defer func() {
		c.Game.Hub.Unregister(c.SessionID, c.updates)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("session", c.SessionID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go func() {
		for msg := range c.updates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	logger.Log.WithFields(logrus.Fields{
		"session": c.SessionID,
		"remote":  c.Conn.RemoteAddr().String(),
	}).Info("Client connected")

	// INIT - триггер первой отрисовки (карта + приветствие)
	c.submit(api.ClientCommand{Action: "INIT"})

	// 2. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Warn("WS read error")
			}
			return
		}
		c.submit(cmd)
	}
}

// submit отдает команду движку. Ошибку протокола видит только этот клиент.
func (c *Client) submit(cmd api.ClientCommand) {
	cmd.Token = c.SessionID
	if err := c.Game.ProcessCommand(cmd); err != nil {
		c.Game.Hub.SendTo(c.SessionID, api.ServerResponse{
			Type:  api.ResponseError,
			Error: err.Error(),
		})
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
