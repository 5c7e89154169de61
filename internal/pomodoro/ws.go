package pomodoro

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// timerRequest is the incoming websocket message format.
type timerRequest struct {
	Type        string `json:"type"` // "start" or "stop"
	Kind        Kind   `json:"kind,omitempty"`
	DurationSec int    `json:"duration_sec,omitempty"`
}

// timerResponse is the outgoing websocket message format.
type timerResponse struct {
	Type         string `json:"type"` // "tick", "done", "stopped" or "error"
	Kind         Kind   `json:"kind,omitempty"`
	RemainingSec int    `json:"remaining_sec,omitempty"`
	Error        string `json:"error,omitempty"`
}

// handleTimer runs the live timer for one websocket connection. The client
// sends start/stop; the server ticks remaining seconds once per second and
// records the session when the countdown finishes.
func handleTimer(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("pomodoro: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		// Read pump: control messages are forwarded to the timer loop.
		requests := make(chan timerRequest)
		go readPump(r.Context(), conn, requests)

		runTimerLoop(r.Context(), conn, store, requests)
	}
}

// readPump forwards incoming control messages until the connection or the
// context goes away. The send watches ctx so the pump cannot stay blocked
// once the timer loop has exited.
func readPump(ctx context.Context, conn *websocket.Conn, requests chan<- timerRequest) {
	defer close(requests)
	for {
		var req timerRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("pomodoro: websocket read: %v", err)
			}
			return
		}
		select {
		case requests <- req:
		case <-ctx.Done():
			return
		}
	}
}

// timerState tracks the countdown currently running on a connection.
type timerState struct {
	kind      Kind
	startedAt time.Time
	duration  int
	remaining int
}

func runTimerLoop(ctx context.Context, conn *websocket.Conn, store *Store, requests <-chan timerRequest) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var active *timerState

	for {
		select {
		case req, ok := <-requests:
			if !ok {
				// Client went away; an interrupted countdown is logged as
				// an abandoned session. The request context is likely
				// canceled by now, so the write uses a fresh one.
				if active != nil {
					recordRun(context.Background(), store, active, false)
				}
				return
			}

			switch req.Type {
			case "start":
				if !req.Kind.Valid() {
					conn.WriteJSON(timerResponse{Type: "error", Error: "unknown session kind"})
					continue
				}
				if req.DurationSec <= 0 {
					conn.WriteJSON(timerResponse{Type: "error", Error: "duration_sec must be positive"})
					continue
				}
				active = &timerState{
					kind:      req.Kind,
					startedAt: time.Now().UTC(),
					duration:  req.DurationSec,
					remaining: req.DurationSec,
				}
				conn.WriteJSON(timerResponse{Type: "tick", Kind: active.kind, RemainingSec: active.remaining})

			case "stop":
				if active != nil {
					recordRun(ctx, store, active, false)
					active = nil
				}
				conn.WriteJSON(timerResponse{Type: "stopped"})

			default:
				conn.WriteJSON(timerResponse{Type: "error", Error: "unknown message type: " + req.Type})
			}

		case <-ticker.C:
			if active == nil {
				continue
			}
			active.remaining--
			if active.remaining > 0 {
				conn.WriteJSON(timerResponse{Type: "tick", Kind: active.kind, RemainingSec: active.remaining})
				continue
			}
			recordRun(ctx, store, active, true)
			conn.WriteJSON(timerResponse{Type: "done", Kind: active.kind})
			active = nil

		case <-ctx.Done():
			if active != nil {
				recordRun(context.Background(), store, active, false)
			}
			return
		}
	}
}

func recordRun(ctx context.Context, store *Store, state *timerState, completed bool) {
	_, err := store.RecordSession(ctx, Session{
		Kind:        state.kind,
		StartedAt:   state.startedAt,
		DurationSec: state.duration,
		Completed:   completed,
	})
	if err != nil {
		log.Printf("pomodoro: recording session: %v", err)
	}
}
