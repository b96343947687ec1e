package advisor

// StayHomeAdvice replaces all other overall advice when staying home is advised.
const StayHomeAdvice = "⚠️ STAY HOME: Environmental conditions are dangerous. Air quality is hazardous and poses serious health risks. Only go outside if absolutely necessary, and use N95 mask and protective equipment."

func overallAdvice(a adviceFlags, temp, humidity, dust, gas float64) string {
	if a.stayHome {
		return StayHomeAdvice
	}

	var advice []string
	if a.maskNeeded {
		advice = append(advice, "You can go outside, but MUST wear an N95 or KN95 mask due to poor air quality")
	} else {
		advice = append(advice, "It's safe to go outside")
	}

	if temp > 35 {
		advice = append(advice, "Stay hydrated and take frequent breaks in shade")
	} else if temp < 5 {
		advice = append(advice, "Protect all exposed skin from cold")
	}

	if humidity > 80 && temp > 20 {
		advice = append(advice, "Expect uncomfortable humid conditions")
	}

	if dust > maskDustLimit || gas > elevatedGasLimit {
		advice = append(advice, "Limit time outdoors to essential activities only")
	}

	return sentences(advice)
}

func safetyReasoning(a adviceFlags) string {
	var reasons []string

	if a.stayHome {
		reasons = append(reasons, "The stay-home recommendation is based on hazardous environmental conditions that pose immediate health risks")
	}

	if a.maskNeeded {
		reasons = append(reasons, "Mask is required because air quality exceeds safe thresholds for particulate matter or harmful gases")
	} else {
		reasons = append(reasons, "No mask needed as air quality is within acceptable limits")
	}

	reasons = append(reasons,
		"Clothing recommendations are based on temperature, humidity, and precipitation probability",
		"These recommendations follow EPA air quality standards and WHO health guidelines",
	)

	return sentences(reasons)
}

type adviceFlags struct {
	maskNeeded bool
	stayHome   bool
}
