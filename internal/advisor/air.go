package advisor

// Dust bands follow the PM2.5 breakpoints.
var dustAdvice = table{
	bands: []band{
		{atMost, 12, "Air quality is good"},
		{atMost, 35, "Air quality is acceptable. Unusually sensitive people should consider limiting prolonged outdoor exertion"},
		{atMost, 55, "Air quality is unhealthy for sensitive groups (children, elderly, people with respiratory conditions)"},
		{atMost, 150, "Air quality is unhealthy for everyone. Everyone should limit prolonged outdoor exertion"},
		{atMost, 250, "Air quality is very unhealthy. Everyone should avoid prolonged outdoor exertion"},
	},
	fallback: "AIR QUALITY IS HAZARDOUS! Avoid all outdoor activities",
}

var gasAdvice = table{
	bands: []band{
		{atMost, 200, "Gas levels are within normal range"},
		{atMost, 300, "Slightly elevated gas levels. Monitor your environment"},
		{atMost, 500, "Elevated gas levels. Reduce outdoor exposure time"},
		{atMost, 1000, "High gas concentration detected. Limit exposure and ensure good ventilation"},
	},
	fallback: "DANGEROUS gas levels detected! Ventilate area immediately and evacuate if possible",
}

const (
	maskDustLimit     = 55.0
	maskGasLimit      = 500.0
	severeDustLimit   = 150.0
	hazardDustLimit   = 250.0
	hazardGasLimit    = 1000.0
	elevatedGasLimit  = 300.0
	extremeHeatLimitC = 40.0
	extremeColdLimitC = -10.0
)

func airQualityAdvice(dust, gas float64) string {
	return sentences([]string{dustAdvice.lookup(dust), gasAdvice.lookup(gas)})
}

// MaskNeeded reports whether particulates or gas exceed the mask thresholds.
func MaskNeeded(dust, gas float64) bool {
	return dust > maskDustLimit || gas > maskGasLimit
}

// StayHome reports hazardous air on its own, or bad air combined with an
// extreme temperature.
func StayHome(dust, gas, temp float64) bool {
	if dust > hazardDustLimit || gas > hazardGasLimit {
		return true
	}
	extremeTemp := temp > extremeHeatLimitC || temp < extremeColdLimitC
	badAir := dust > severeDustLimit || gas > maskGasLimit
	return extremeTemp && badAir
}
