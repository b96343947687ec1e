package advisor

import "env_advisor/internal/models"

// Evaluate runs every rule against one reading. It never fails: any finite
// input, physically plausible or not, goes through the same tables.
func Evaluate(r models.SensorReading) models.Evaluation {
	flags := adviceFlags{
		maskNeeded: MaskNeeded(r.DustDensity, r.GasValue),
		stayHome:   StayHome(r.DustDensity, r.GasValue, r.Temperature),
	}

	advisory := models.Advisory{
		WeatherPrediction:      predictWeather(r.Temperature, r.Humidity),
		ClothingRecommendation: clothingAdvice(r.Temperature, r.Humidity),
		AirQualityAdvice:       airQualityAdvice(r.DustDensity, r.GasValue),
		MaskNeeded:             flags.maskNeeded,
		StayHome:               flags.stayHome,
		OverallAdvice:          overallAdvice(flags, r.Temperature, r.Humidity, r.DustDensity, r.GasValue),
		DetailedComments: models.DetailedComments{
			TemperatureAnalysis: analyzeTemperature(r.Temperature),
			HumidityAnalysis:    analyzeHumidity(r.Humidity, r.Temperature),
			DustAnalysis:        analyzeDust(r.DustDensity),
			GasAnalysis:         analyzeGas(r.GasValue),
			SafetyReasoning:     safetyReasoning(flags),
		},
	}

	insights := ruleBasedInsights(r)

	return models.Evaluation{
		Advisory: advisory,
		Insights: insights,
		Summary:  quickSummary(advisory, insights),
	}
}
