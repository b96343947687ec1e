package models

// Recommendations is the subset of Advisory surfaced at the top level of a report.
type Recommendations struct {
	WeatherPrediction      string `json:"weatherPrediction"`
	ClothingRecommendation string `json:"clothingRecommendation"`
	AirQualityAdvice       string `json:"airQualityAdvice"`
	MaskNeeded             bool   `json:"maskNeeded"`
	StayHome               bool   `json:"stayHome"`
	OverallAdvice          string `json:"overallAdvice"`
}

// AnalysisReport is the body returned by POST /api/analyze.
type AnalysisReport struct {
	Success           bool             `json:"success"`
	Timestamp         string           `json:"timestamp"`
	SensorData        SensorData       `json:"sensorData"`
	Recommendations   Recommendations  `json:"recommendations"`
	DetailedComments  DetailedComments `json:"detailedComments"`
	RuleBasedInsights Insights         `json:"ruleBasedInsights"`
	QuickSummary      QuickSummary     `json:"quickSummary"`
}

// ReadingExample is echoed back on validation failures.
var ReadingExample = SensorReading{
	Temperature: 25,
	Humidity:    70,
	DustDensity: 50,
	GasValue:    200,
}
