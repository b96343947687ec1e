package models

// Urgency is the coarse severity of the worst single-category warning.
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Advisory is the text and flag output of one evaluation.
type Advisory struct {
	WeatherPrediction      string           `json:"weatherPrediction"`
	ClothingRecommendation string           `json:"clothingRecommendation"`
	AirQualityAdvice       string           `json:"airQualityAdvice"`
	MaskNeeded             bool             `json:"maskNeeded"`
	StayHome               bool             `json:"stayHome"`
	OverallAdvice          string           `json:"overallAdvice"`
	DetailedComments       DetailedComments `json:"detailedComments"`
}

type DetailedComments struct {
	TemperatureAnalysis string `json:"temperatureAnalysis"`
	HumidityAnalysis    string `json:"humidityAnalysis"`
	DustAnalysis        string `json:"dustAnalysis"`
	GasAnalysis         string `json:"gasAnalysis"`
	SafetyReasoning     string `json:"safetyReasoning"`
}

// Insights holds the warning lists and the escalated urgency level.
type Insights struct {
	WeatherWarnings    []string `json:"weatherWarnings"`
	AirQualityWarnings []string `json:"airQualityWarnings"`
	UrgencyLevel       Urgency  `json:"urgencyLevel"`
}

// QuickSummary carries exactly one of Warnings or Message.
type QuickSummary struct {
	Urgency        Urgency  `json:"urgency"`
	CanGoOutSafely bool     `json:"canGoOutSafely"`
	Essentials     []string `json:"essentials"`
	Warnings       []string `json:"warnings,omitempty"`
	Message        string   `json:"message,omitempty"`
}

// Evaluation bundles everything derived from a single reading.
type Evaluation struct {
	Advisory Advisory
	Insights Insights
	Summary  QuickSummary
}
