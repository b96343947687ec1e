package service

import (
	"context"
	"fmt"
	"time"

	"env_advisor/internal/advisor"
	"env_advisor/internal/models"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t the way every response carries it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type AdvisoryService struct {
	evaluate func(models.SensorReading) models.Evaluation
	now      func() time.Time
}

func NewAdvisoryService() *AdvisoryService {
	return &AdvisoryService{
		evaluate: advisor.Evaluate,
		now:      time.Now,
	}
}

// Analyze validates presence of all four readings, evaluates them and shapes
// the API report. A panic during evaluation surfaces as an InternalError.
func (s *AdvisoryService) Analyze(ctx context.Context, in ReadingInput) (report models.AnalysisReport, err error) {
	if err := ctx.Err(); err != nil {
		return models.AnalysisReport{}, &InternalError{Err: err}
	}

	reading, err := in.Validate()
	if err != nil {
		return models.AnalysisReport{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			report = models.AnalysisReport{}
			err = &InternalError{Err: fmt.Errorf("evaluate reading: %v", r)}
		}
	}()

	ev := s.evaluate(reading)

	return models.AnalysisReport{
		Success:    true,
		Timestamp:  FormatTimestamp(s.now()),
		SensorData: FormatSensorData(reading),
		Recommendations: models.Recommendations{
			WeatherPrediction:      ev.Advisory.WeatherPrediction,
			ClothingRecommendation: ev.Advisory.ClothingRecommendation,
			AirQualityAdvice:       ev.Advisory.AirQualityAdvice,
			MaskNeeded:             ev.Advisory.MaskNeeded,
			StayHome:               ev.Advisory.StayHome,
			OverallAdvice:          ev.Advisory.OverallAdvice,
		},
		DetailedComments:  ev.Advisory.DetailedComments,
		RuleBasedInsights: ev.Insights,
		QuickSummary:      ev.Summary,
	}, nil
}

// FormatSensorData echoes the reading with unit suffixes ("25°C", "70%").
func FormatSensorData(r models.SensorReading) models.SensorData {
	return models.SensorData{
		Temperature: advisor.FormatNumber(r.Temperature) + "°C",
		Humidity:    advisor.FormatNumber(r.Humidity) + "%",
		DustDensity: advisor.FormatNumber(r.DustDensity) + " µg/m³",
		GasValue:    advisor.FormatNumber(r.GasValue) + " ppm",
	}
}
