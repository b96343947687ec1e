package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"env_advisor/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil, nil, Options{})
	r.GET("/secure", h.deviceAuthMiddleware, func(c *gin.Context) {
		id, _ := c.Get(ctxDeviceID)
		c.JSON(http.StatusOK, gin.H{"ok": true, "deviceId": id})
	})
	return r
}

func TestDeviceAuthMiddleware_Errors(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		parseErr error
		wantMsg  string
	}{
		{name: "missing header", wantMsg: "missing Authorization header"},
		{name: "invalid scheme", header: "Token abc", wantMsg: "invalid Authorization header format"},
		{name: "bearer without token", header: "Bearer", wantMsg: "invalid Authorization header format"},
		{name: "expired token", header: "Bearer expired", parseErr: errors.New("expired"), wantMsg: "invalid or expired token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{enabled: true, parseErr: tc.parseErr}
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401 (body=%s)", w.Code, w.Body.String())
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.wantMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.wantMsg)
			}
		})
	}
}

func TestDeviceAuthMiddleware_SuccessSetsDeviceID(t *testing.T) {
	auth := &mockAuth{enabled: true, parseID: "balcony-node"}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header = authHeader("good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d; body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		OK       bool   `json:"ok"`
		DeviceID string `json:"deviceId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.DeviceID != "balcony-node" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastParseToken != "good-token" {
		t.Fatalf("ParseToken got %q, want %q", auth.lastParseToken, "good-token")
	}
}

func TestDeviceAuthMiddleware_QueryTokenOnlyForWebSocket(t *testing.T) {
	auth := &mockAuth{enabled: true, parseID: "node"}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure?token=abc", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}

func TestDeviceAuthMiddleware_DisabledPassesThrough(t *testing.T) {
	cases := map[string]*service.Service{
		"no auth service": {},
		"auth disabled":   {Authorization: &mockAuth{enabled: false}},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			r := newMiddlewareOnlyRouter(s)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, want 200", w.Code)
			}
		})
	}
}

func TestAnalyze_RequiresTokenWhenAuthEnabled(t *testing.T) {
	adv := &mockAdvisory{}
	auth := &mockAuth{enabled: true, parseErr: service.ErrInvalidToken}
	r := newTestRouter(&service.Service{Advisory: adv, Authorization: auth})

	w := postAnalyze(t, r, `{"temperature":25,"humidity":70,"dustDensity":50,"gasValue":200}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
	if adv.calls != 0 {
		t.Fatal("service must not run without a valid token")
	}
}
