package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"env_advisor/internal/advisor"
	"env_advisor/internal/models"
)

func f64(v float64) *float64 { return &v }

func fullInput(t, h, d, g float64) ReadingInput {
	return ReadingInput{Temperature: f64(t), Humidity: f64(h), DustDensity: f64(d), GasValue: f64(g)}
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("X", 2*3600))
}

func TestAdvisoryService_Analyze_Success(t *testing.T) {
	t.Parallel()

	svc := NewAdvisoryService()
	svc.now = fixedClock

	got, err := svc.Analyze(context.Background(), fullInput(25, 70, 50, 200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Success {
		t.Fatalf("expected success=true")
	}
	if got.Timestamp != "2025-03-04T03:06:07.890Z" {
		t.Errorf("timestamp: got %q", got.Timestamp)
	}
	want := models.SensorData{
		Temperature: "25°C",
		Humidity:    "70%",
		DustDensity: "50 µg/m³",
		GasValue:    "200 ppm",
	}
	if got.SensorData != want {
		t.Errorf("sensorData: want %+v, got %+v", want, got.SensorData)
	}
	if got.Recommendations.MaskNeeded || got.Recommendations.StayHome {
		t.Errorf("unexpected flags: %+v", got.Recommendations)
	}
	if got.RuleBasedInsights.UrgencyLevel != models.UrgencyNormal {
		t.Errorf("urgency: got %q", got.RuleBasedInsights.UrgencyLevel)
	}
	if got.QuickSummary.Message != advisor.GoodConditionsNotice {
		t.Errorf("message: got %q", got.QuickSummary.Message)
	}

	ev := advisor.Evaluate(models.SensorReading{Temperature: 25, Humidity: 70, DustDensity: 50, GasValue: 200})
	if !reflect.DeepEqual(got.DetailedComments, ev.Advisory.DetailedComments) {
		t.Errorf("detailedComments differ from evaluator output")
	}
}

func TestAdvisoryService_Analyze_MissingFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      ReadingInput
		missing []string
	}{
		{"all missing", ReadingInput{}, []string{"temperature", "humidity", "dustDensity", "gasValue"}},
		{"gas missing", ReadingInput{Temperature: f64(25), Humidity: f64(70), DustDensity: f64(50)}, []string{"gasValue"}},
		{"temperature missing", ReadingInput{Humidity: f64(0), DustDensity: f64(0), GasValue: f64(0)}, []string{"temperature"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewAdvisoryService().Analyze(context.Background(), tc.in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !reflect.DeepEqual(vErr.Missing, tc.missing) {
				t.Errorf("missing: want %v, got %v", tc.missing, vErr.Missing)
			}
			if vErr.Error() != msgMissingFields {
				t.Errorf("message: got %q", vErr.Error())
			}
			if !IsValidation(err) {
				t.Errorf("IsValidation should be true")
			}
		})
	}
}

func TestAdvisoryService_Analyze_ZeroValuesAreNotMissing(t *testing.T) {
	t.Parallel()

	got, err := NewAdvisoryService().Analyze(context.Background(), fullInput(0, 0, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SensorData.Temperature != "0°C" || got.SensorData.DustDensity != "0 µg/m³" {
		t.Errorf("unexpected sensorData: %+v", got.SensorData)
	}
}

func TestAdvisoryService_Analyze_PanicBecomesInternalError(t *testing.T) {
	t.Parallel()

	svc := NewAdvisoryService()
	svc.evaluate = func(models.SensorReading) models.Evaluation { panic("boom") }

	_, err := svc.Analyze(context.Background(), fullInput(1, 2, 3, 4))
	var iErr *InternalError
	if !errors.As(err, &iErr) {
		t.Fatalf("expected InternalError, got %v", err)
	}
	if IsValidation(err) {
		t.Errorf("panic must not be reported as validation error")
	}
}

func TestAdvisoryService_Analyze_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAdvisoryService().Analyze(ctx, fullInput(1, 2, 3, 4))
	var iErr *InternalError
	if !errors.As(err, &iErr) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected InternalError wrapping context.Canceled, got %v", err)
	}
}

func TestFormatSensorData(t *testing.T) {
	t.Parallel()

	got := FormatSensorData(models.SensorReading{Temperature: -3.5, Humidity: 100, DustDensity: 12.25, GasValue: 1001})
	want := models.SensorData{Temperature: "-3.5°C", Humidity: "100%", DustDensity: "12.25 µg/m³", GasValue: "1001 ppm"}
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

func TestMalformedInputError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected token")
	err := NewMalformedInputError(cause)
	if !IsValidation(err) {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped")
	}
	if err.Error() != "Invalid request body: unexpected token" {
		t.Fatalf("message: got %q", err.Error())
	}
}
