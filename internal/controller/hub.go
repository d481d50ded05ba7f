package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Статический сайт ходит с другого origin
		return true
	},
}

// refreshEvent сообщение для открытых страниц: состояние бронирований
// изменилось, перерисуй календарь и список целиком
type refreshEvent struct {
	Event string `json:"event"`
}

// Client одна подписанная страница
type Client struct {
	conn *websocket.Conn
	Send chan []byte
}

// Hub раздаёт пуш-обновления доступности всем подписанным страницам.
// Реализует service.ChangeListener: каждая мутация хранилища превращается
// в broadcast события bookings_changed.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stopChan   chan struct{}
	clients    map[*Client]bool
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		stopChan:   make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run главный цикл хаба, запускается в отдельной горутине
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					// Медленный клиент — отключаем, чтобы не копить буфер
					delete(h.clients, client)
					close(client.Send)
				}
			}
		case <-h.stopChan:
			for client := range h.clients {
				close(client.Send)
				client.conn.Close()
			}
			return
		}
	}
}

// Stop останавливает хаб и закрывает все соединения
func (h *Hub) Stop() {
	close(h.stopChan)
}

// BookingsChanged рассылает событие обновления всем страницам
func (h *Hub) BookingsChanged() {
	data, err := json.Marshal(refreshEvent{Event: "bookings_changed"})
	if err != nil {
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.stopChan:
	}
}

// HandleWS подписывает страницу на пуш-обновления доступности
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		Send: make(chan []byte, 8),
	}

	// После Stop главный цикл уже не читает register
	select {
	case h.register <- client:
	case <-h.stopChan:
		conn.Close()
		return
	}

	// Пишущая горутина
	go func() {
		for msg := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
		conn.Close()
	}()

	// Держим соединение до отключения клиента
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	select {
	case h.unregister <- client:
	case <-h.stopChan:
		// Хаб остановлен и сам закрыл каналы клиентов
	}
	conn.Close()
}
