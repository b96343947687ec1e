package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"env_advisor/internal/models"
	"env_advisor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

const (
	wsTypeAnalysis = "analysis"
	wsTypeError    = "error"
)

// wsEnvelope is the single message shape written to WebSocket clients.
type wsEnvelope struct {
	Type    string                 `json:"type"`
	Data    *models.AnalysisReport `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Example *models.SensorReading  `json:"example,omitempty"`
}

// Devices connect from arbitrary hosts; origin checks are left to the proxy.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Stream analyses
// @Description  Upgrade to WebSocket. Each text frame holding a reading is answered with one analysis or error envelope.
// @Tags         analysis
// @Param        token  query  string  false  "bearer token when device auth is enabled"
// @Success      101
// @Failure      401  {object}  map[string]string
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(h.opts.WSMaxMessageBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The reader goroutine only reads; all writes happen in the loop below.
	frames := make(chan []byte)
	done := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go h.startReader(conn, frames, done, stop)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case frame := <-frames:
			if err := h.sendAnalysis(ctx, conn, frame); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// startReader forwards data frames until the connection fails.
func (h *Handler) startReader(conn *websocket.Conn, frames chan<- []byte, done chan<- struct{}, stop <-chan struct{}) {
	defer close(done)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		select {
		case frames <- msg:
		case <-stop:
			return
		}
	}
}

// sendAnalysis evaluates one frame and writes the envelope. Bad input is
// reported to the client; only write errors are returned.
func (h *Handler) sendAnalysis(ctx context.Context, conn *websocket.Conn, frame []byte) error {
	env := h.analyzeFrame(ctx, frame)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}

func (h *Handler) analyzeFrame(ctx context.Context, frame []byte) wsEnvelope {
	var in service.ReadingInput
	var err error
	if jerr := json.Unmarshal(frame, &in); jerr != nil {
		err = service.NewMalformedInputError(jerr)
	}

	var report models.AnalysisReport
	if err == nil {
		report, err = h.services.Analyze(ctx, in)
	}

	switch {
	case err == nil:
		h.metrics.ObserveAnalysis(string(report.RuleBasedInsights.UrgencyLevel))
		return wsEnvelope{Type: wsTypeAnalysis, Data: &report}
	case service.IsValidation(err):
		h.metrics.IncValidationFailure()
		example := models.ReadingExample
		return wsEnvelope{Type: wsTypeError, Error: err.Error(), Example: &example}
	default:
		if h.log != nil {
			h.log.Errorw("ws_analyze_failed", "err", err)
		}
		return wsEnvelope{Type: wsTypeError, Error: errAnalyzeFailed + ": " + err.Error()}
	}
}
