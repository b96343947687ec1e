package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"env_advisor/internal/models"
	"env_advisor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "OK"

	errAnalyzeFailed = "Failed to analyze data"
)

// AnalyzeRequest documents the POST /api/analyze payload.
type AnalyzeRequest struct {
	Temperature float64 `json:"temperature" example:"25"`
	Humidity    float64 `json:"humidity" example:"70"`
	DustDensity float64 `json:"dustDensity" example:"50"`
	GasValue    float64 `json:"gasValue" example:"200"`
}

// ValidationErrorResponse is the 400 body.
type ValidationErrorResponse struct {
	Error   string               `json:"error" example:"Missing required fields: temperature, humidity, dustDensity, gasValue"`
	Example models.SensorReading `json:"example"`
}

// InternalErrorResponse is the 500 body.
type InternalErrorResponse struct {
	Error   string `json:"error" example:"Failed to analyze data"`
	Details string `json:"details"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2025-03-04T03:06:07.890Z"`
	Version   string `json:"version" example:"Free Rule-Based System"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: service.FormatTimestamp(time.Now()),
		Version:   h.opts.Version,
	})
}

// @Summary      Analyze sensor reading
// @Description  Evaluates temperature, humidity, dust density and gas readings against fixed rules.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        input  body      AnalyzeRequest  true  "sensor reading"
// @Success      200    {object}  models.AnalysisReport
// @Failure      400    {object}  ValidationErrorResponse
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  InternalErrorResponse
// @Router       /api/analyze [post]
// @Security     BearerAuth
func (h *Handler) analyze(c *gin.Context) {
	var in service.ReadingInput
	// An empty body decodes as {} and fails validation below.
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		h.respondAnalyzeError(c, service.NewMalformedInputError(err))
		return
	}

	report, err := h.services.Analyze(c.Request.Context(), in)
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	h.metrics.ObserveAnalysis(string(report.RuleBasedInsights.UrgencyLevel))
	c.JSON(http.StatusOK, report)
}

func (h *Handler) respondAnalyzeError(c *gin.Context, err error) {
	if service.IsValidation(err) {
		h.metrics.IncValidationFailure()
		if h.log != nil {
			h.log.Infow("analyze_bad_request", "err", err, "request_id", requestIDFrom(c))
		}
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   err.Error(),
			Example: models.ReadingExample,
		})
		return
	}
	h.logAndInternalError(c, "analyze_failed", err)
}

// logAndInternalError renders the shared 500 body.
func (h *Handler) logAndInternalError(c *gin.Context, logKey string, err error) {
	if h.log != nil {
		h.log.Errorw(logKey, "err", err, "request_id", requestIDFrom(c))
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, InternalErrorResponse{
		Error:   errAnalyzeFailed,
		Details: err.Error(),
	})
}

func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	h.logAndInternalError(c, "handler_panic", fmt.Errorf("%v", recovered))
}
