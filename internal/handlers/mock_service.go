package handlers

import (
	"context"
	"net/http"

	"env_advisor/internal/models"
	"env_advisor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	enabled       bool
	genTokenToken string
	genTokenErr   error
	parseID       string
	parseErr      error

	lastGenDeviceID string
	lastGenKey      string
	lastParseToken  string
}

func (m *mockAuth) Enabled() bool { return m.enabled }

func (m *mockAuth) GenerateToken(deviceID, key string) (string, error) {
	m.lastGenDeviceID = deviceID
	m.lastGenKey = key
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockAdvisory struct {
	report models.AnalysisReport
	err    error
	panic  any
	calls  int
	lastIn service.ReadingInput
}

func (m *mockAdvisory) Analyze(ctx context.Context, in service.ReadingInput) (models.AnalysisReport, error) {
	m.calls++
	m.lastIn = in
	if m.panic != nil {
		panic(m.panic)
	}
	return m.report, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil, Options{})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
