package models

// SensorReading is one sample from the environmental sensor board.
type SensorReading struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // %
	DustDensity float64 `json:"dustDensity"` // µg/m³
	GasValue    float64 `json:"gasValue"`    // ppm
}

// SensorData is the unit-suffixed echo of a reading returned to clients.
type SensorData struct {
	Temperature string `json:"temperature"` // e.g. "25°C"
	Humidity    string `json:"humidity"`    // e.g. "70%"
	DustDensity string `json:"dustDensity"` // e.g. "50 µg/m³"
	GasValue    string `json:"gasValue"`    // e.g. "200 ppm"
}
