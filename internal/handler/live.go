package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/registry"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type Subscriptions interface {
	NewScope(ctx context.Context, owner string) (*registry.Scope, error)
}

type OrderViewer interface {
	GetOrderFor(ctx context.Context, session entities.Session, id string) (entities.Order, error)
}

// LiveHandler streams query snapshots over a websocket. One connection is
// one subscription scope.
type LiveHandler struct {
	logger       *slog.Logger
	subs         Subscriptions
	orders       OrderViewer
	upgrader     websocket.Upgrader
	authenticate Middleware
}

func NewLiveHandler(logger *slog.Logger, subs Subscriptions, orders OrderViewer, allowedOrigins []string, authenticate Middleware) *LiveHandler {
	return &LiveHandler{
		logger: logger.With(slog.String("handler", "live")),
		subs:   subs,
		orders: orders,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
		authenticate: authenticate,
	}
}

func (h *LiveHandler) Init(r chi.Router) {
	r.With(h.authenticate).Get("/ws", h.Serve)
}

// Serve открывает поток снимков.
// @Summary      Живые подписки
// @Description  Клиент шлёт {"op":"subscribe"|"unsubscribe","query":{"kind":...,"id":...}}, сервер отвечает снимками {"query":...,"orders":[...]}. Без id подставляется текущий пользователь.
// @Tags         live
// @Param        token  query  string  true  "Токен сессии"
// @Success      101
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /ws [get]
func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade connection", slog.Any("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	scope, err := h.subs.NewScope(ctx, session.UserID)
	if err != nil {
		h.logger.Error("failed to open scope", slog.Any("error", err))
		conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "shutting down"), time.Now().Add(writeWait))
		return
	}
	defer scope.Close()
	liveConnections.Inc()
	defer liveConnections.Dec()

	send := make(chan LiveSnapshot)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		h.writeLoop(ctx, conn, scope, send)
		// будим читателя, если клиент не ответил на close
		conn.SetReadDeadline(time.Now().Add(writeWait))
	}()

	h.readLoop(ctx, conn, session, scope, send)
	cancel()
	<-done
}

func (h *LiveHandler) readLoop(ctx context.Context, conn *websocket.Conn, session entities.Session, scope *registry.Scope, send chan<- LiveSnapshot) {
	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var req LiveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("connection dropped", slog.String("user_id", session.UserID), slog.Any("error", err))
			}
			return
		}

		q := withOwner(req.Query, session)
		switch req.Op {
		case "subscribe":
			if err := h.authorize(ctx, session, q); err != nil {
				h.reply(ctx, send, LiveSnapshot{Query: q, Error: err.Error()})
				continue
			}
			sub, err := scope.Subscribe(q)
			if err != nil {
				if errors.Is(err, registry.ErrScopeClosed) {
					return
				}
				h.reply(ctx, send, LiveSnapshot{Query: q, Error: err.Error()})
				continue
			}
			go forward(ctx, session, sub, send)
		case "unsubscribe":
			scope.Unsubscribe(q)
		default:
			h.reply(ctx, send, LiveSnapshot{Query: q, Error: "unknown op"})
		}
	}
}

func (h *LiveHandler) writeLoop(ctx context.Context, conn *websocket.Conn, scope *registry.Scope, send <-chan LiveSnapshot) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-scope.Done():
			// выход пользователя закрывает все его подписки
			conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session ended"), time.Now().Add(writeWait))
			return
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case msg := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Warn("failed to write snapshot", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (h *LiveHandler) reply(ctx context.Context, send chan<- LiveSnapshot, msg LiveSnapshot) {
	select {
	case send <- msg:
	case <-ctx.Done():
	}
}

// forward relays snapshots until the subscription or the connection ends.
// Snapshots pile up in the subscription while the writer is busy, so a slow
// socket only ever receives the latest one. An order that stops being visible
// to the session, e.g. accepted by another driver, ends the subscription.
func forward(ctx context.Context, session entities.Session, sub *registry.Subscription, send chan<- LiveSnapshot) {
	for snap := range sub.Updates() {
		if !visible(session, snap) {
			sub.Close()
			select {
			case send <- LiveSnapshot{Query: snap.Query, Error: entities.ErrOrderNotFound.Error()}:
			case <-ctx.Done():
			}
			return
		}
		select {
		case send <- SnapshotToJSON(snap):
		case <-ctx.Done():
			return
		}
	}
}

func visible(session entities.Session, snap registry.Snapshot) bool {
	for _, o := range snap.Orders {
		if !o.VisibleTo(session) {
			return false
		}
	}
	return true
}

func (h *LiveHandler) authorize(ctx context.Context, session entities.Session, q registry.Query) error {
	if err := q.Validate(); err != nil {
		return err
	}
	switch q.Kind {
	case registry.KindAvailable:
		if session.Role != entities.RoleDriver {
			return entities.ErrForbidden
		}
	case registry.KindDriverActive, registry.KindDriverHistory:
		if session.Role != entities.RoleDriver || q.Param != session.UserID {
			return entities.ErrForbidden
		}
	case registry.KindClientCurrent, registry.KindClientHistory:
		if session.Role != entities.RoleClient || q.Param != session.UserID {
			return entities.ErrForbidden
		}
	case registry.KindOrderByID:
		if _, err := h.orders.GetOrderFor(ctx, session, q.Param); err != nil {
			if errors.Is(err, entities.ErrOrderNotFound) {
				return entities.ErrOrderNotFound
			}
			return errors.New("failed to check order access")
		}
	}
	return nil
}

// withOwner fills the parameter of per-user queries with the session user.
func withOwner(q registry.Query, session entities.Session) registry.Query {
	if q.Param != "" {
		return q
	}
	switch q.Kind {
	case registry.KindDriverActive, registry.KindDriverHistory, registry.KindClientCurrent, registry.KindClientHistory:
		q.Param = session.UserID
	}
	return q
}
