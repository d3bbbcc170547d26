package controllers

import (
	"net/http"
	"time"

	"github.com/QUATTR0KI/fatbeaches-web/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT        *services.RealtimeHub
	Access    *services.AccessService
	Summaries *services.SummaryRefresher
}

func NewRealtimeController(rt *services.RealtimeHub, access *services.AccessService, summaries *services.SummaryRefresher) *RealtimeController {
	return &RealtimeController{RT: rt, Access: access, Summaries: summaries}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

// StateWS streams access-state and diary-summary updates for the caller.
// The current snapshot is sent right after the upgrade so a fresh client
// does not sit dark until the next session event.
func (rc *RealtimeController) StateWS(c *gin.Context) {
	uid := c.GetString("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	// initial state, written before the hub can reach this connection so
	// the writes cannot interleave with a broadcast
	if snap, err := rc.Access.ResolveAccess(uid, false); err == nil {
		_ = conn.WriteJSON(map[string]any{"kind": "access.state", "data": snap})
	}
	if sum, ok := rc.Summaries.Latest(uid); ok {
		_ = conn.WriteJSON(map[string]any{"kind": "diary.summary", "data": sum})
	}

	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
