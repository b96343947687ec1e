package service

import "env_advisor/internal/models"

// ReadingInput is the raw request payload. Pointers distinguish an absent
// (or null) field from a zero reading.
type ReadingInput struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	DustDensity *float64 `json:"dustDensity"`
	GasValue    *float64 `json:"gasValue"`
}

// Validate checks presence only; any numeric value is accepted.
func (in ReadingInput) Validate() (models.SensorReading, error) {
	var missing []string
	if in.Temperature == nil {
		missing = append(missing, "temperature")
	}
	if in.Humidity == nil {
		missing = append(missing, "humidity")
	}
	if in.DustDensity == nil {
		missing = append(missing, "dustDensity")
	}
	if in.GasValue == nil {
		missing = append(missing, "gasValue")
	}
	if len(missing) > 0 {
		return models.SensorReading{}, &ValidationError{Missing: missing}
	}
	return models.SensorReading{
		Temperature: *in.Temperature,
		Humidity:    *in.Humidity,
		DustDensity: *in.DustDensity,
		GasValue:    *in.GasValue,
	}, nil
}
