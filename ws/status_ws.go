package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/amrit073/NEPGA/entity"
	"github.com/amrit073/NEPGA/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	EventSubmitted     = "application.submitted"
	EventStatusChanged = "application.status_changed"

	writeWait     = 5 * time.Second
	broadcastSize = 64
)

// Event is what admin dashboards receive.
type Event struct {
	Type           string        `json:"type"`
	ApplicationID  string        `json:"application_id"`
	FullName       string        `json:"full_name"`
	Status         entity.Status `json:"status"`
	PreviousStatus entity.Status `json:"previous_status,omitempty"`
	SubmissionDate string        `json:"submission_date"`
	At             string        `json:"at"`
}

type subscription struct {
	conn  *websocket.Conn
	admin string
}

// StatusHub fans application events out to connected admin clients.
type StatusHub struct {
	clients    map[*websocket.Conn]string
	broadcast  chan Event
	register   chan subscription
	unregister chan *websocket.Conn
	done       chan struct{}
	mu         sync.Mutex
	upgrader   websocket.Upgrader
	log        logrus.FieldLogger
}

func NewStatusHub(allowedOrigins []string, log logrus.FieldLogger) *StatusHub {
	return &StatusHub{
		clients:    make(map[*websocket.Conn]string),
		broadcast:  make(chan Event, broadcastSize),
		register:   make(chan subscription),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader:   websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)},
		log:        log,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Run serves register/unregister/broadcast until ctx is done, then closes
// every connection.
func (h *StatusHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub.conn] = sub.admin
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ev); err != nil {
					h.log.WithError(err).Warn("ws write failed, dropping client")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Clients returns the number of connected admins.
func (h *StatusHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues ev without blocking; events are dropped when the queue is full.
func (h *StatusHub) Publish(ev Event) {
	select {
	case h.broadcast <- ev:
	default:
		h.log.WithField("type", ev.Type).Warn("ws broadcast queue full, event dropped")
	}
}

func (h *StatusHub) ApplicationSubmitted(app *entity.Application) {
	h.Publish(newEvent(EventSubmitted, app, ""))
}

func (h *StatusHub) ApplicationStatusChanged(app *entity.Application, from entity.Status) {
	h.Publish(newEvent(EventStatusChanged, app, from))
}

func newEvent(typ string, app *entity.Application, from entity.Status) Event {
	return Event{
		Type:           typ,
		ApplicationID:  app.ApplicationID,
		FullName:       app.FullName,
		Status:         app.Status,
		PreviousStatus: from,
		SubmissionDate: app.SubmissionDate.UTC().Format(time.RFC3339),
		At:             time.Now().UTC().Format(time.RFC3339),
	}
}

// HandleWebSocket upgrades an authenticated admin request. Route: /api/admin/ws
func (h *StatusHub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade failed")
		return
	}

	select {
	case h.register <- subscription{conn: conn, admin: utils.CurrentAdmin(c)}:
		go h.listen(conn)
	case <-h.done:
		conn.Close()
	}
}

// listen only drains control frames; the feed is one-way.
func (h *StatusHub) listen(conn *websocket.Conn) {
	defer func() {
		select {
		case h.unregister <- conn:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
