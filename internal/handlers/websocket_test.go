package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"env_advisor/internal/models"
	"env_advisor/internal/service"

	"github.com/gorilla/websocket"
)

type testEnvelope struct {
	Type    string                 `json:"type"`
	Data    *models.AnalysisReport `json:"data"`
	Error   string                 `json:"error"`
	Example *models.SensorReading  `json:"example"`
}

func dialWS(t *testing.T, s *service.Service, query url.Values, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	srv := httptest.NewServer(newTestRouter(s))
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = query.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	return dialer.Dial(u.String(), header)
}

func exchange(t *testing.T, conn *websocket.Conn, frame string) testEnvelope {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env testEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	return env
}

func TestWebSocket_AnalyzesEachFrame(t *testing.T) {
	conn, _, err := dialWS(t, realService(), nil, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	env := exchange(t, conn, `{"temperature":25,"humidity":70,"dustDensity":50,"gasValue":200}`)
	if env.Type != "analysis" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
	if env.Data.SensorData.Temperature != "25°C" || env.Data.RuleBasedInsights.UrgencyLevel != models.UrgencyNormal {
		t.Fatalf("unexpected report: %+v", env.Data)
	}

	env = exchange(t, conn, `{"temperature":42,"humidity":20,"dustDensity":200,"gasValue":600}`)
	if env.Type != "analysis" || env.Data == nil || !env.Data.Recommendations.StayHome {
		t.Fatalf("expected stay-home analysis, got %+v", env)
	}
}

func TestWebSocket_BadFramesKeepConnectionOpen(t *testing.T) {
	conn, _, err := dialWS(t, realService(), nil, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	env := exchange(t, conn, `{"temperature":25}`)
	if env.Type != "error" || !strings.HasPrefix(env.Error, "Missing required fields") {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.Example == nil || *env.Example != models.ReadingExample {
		t.Fatalf("expected example payload, got %+v", env.Example)
	}

	env = exchange(t, conn, `not json`)
	if env.Type != "error" || !strings.HasPrefix(env.Error, "Invalid request body") {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	env = exchange(t, conn, `{"temperature":1,"humidity":2,"dustDensity":3,"gasValue":4}`)
	if env.Type != "analysis" {
		t.Fatalf("connection should still analyze after errors, got %+v", env)
	}
}

func TestWebSocket_ServiceErrorEnvelope(t *testing.T) {
	adv := &mockAdvisory{err: &service.InternalError{Err: errors.New("boom")}}
	conn, _, err := dialWS(t, &service.Service{Advisory: adv}, nil, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	env := exchange(t, conn, `{"temperature":1,"humidity":2,"dustDensity":3,"gasValue":4}`)
	if env.Type != "error" || env.Error != "Failed to analyze data: boom" || env.Example != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestWebSocket_AuthRequired(t *testing.T) {
	s := &service.Service{
		Advisory:      service.NewAdvisoryService(),
		Authorization: &mockAuth{enabled: true, parseErr: service.ErrInvalidToken},
	}
	_, resp, err := dialWS(t, s, nil, nil)
	if err == nil {
		t.Fatal("expected handshake to fail without token")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 response, got %+v", resp)
	}
}

func TestWebSocket_QueryTokenAccepted(t *testing.T) {
	auth := &mockAuth{enabled: true, parseID: "balcony-node"}
	s := &service.Service{Advisory: service.NewAdvisoryService(), Authorization: auth}

	conn, _, err := dialWS(t, s, url.Values{"token": {"tok123"}}, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	env := exchange(t, conn, `{"temperature":25,"humidity":70,"dustDensity":50,"gasValue":200}`)
	if env.Type != "analysis" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestWebSocket_OversizedFrameClosesConnection(t *testing.T) {
	srv := httptest.NewServer(NewHandler(realService(), nil, nil, Options{WSMaxMessageBytes: 64}).InitRoutes())
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	big := `{"temperature":25,"humidity":70,"dustDensity":50,"gasValue":200,"pad":"` + strings.Repeat("x", 128) + `"}`
	_ = conn.WriteMessage(websocket.TextMessage, []byte(big))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
