package service

import (
	"context"

	"env_advisor/internal/models"
)

// Advisory turns a sensor reading into an analysis report.
type Advisory interface {
	Analyze(ctx context.Context, in ReadingInput) (models.AnalysisReport, error)
}

// Authorization issues and verifies device bearer tokens.
type Authorization interface {
	Enabled() bool
	GenerateToken(deviceID, key string) (string, error)
	ParseToken(accessToken string) (string, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Advisory
	Authorization
}

// NewService wires the concrete services.
func NewService(auth AuthConfig) *Service {
	return &Service{
		Advisory:      NewAdvisoryService(),
		Authorization: NewAuthService(auth),
	}
}
