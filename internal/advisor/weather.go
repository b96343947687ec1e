package advisor

var weatherByTemperature = table{
	bands: []band{
		{below, 0, "Freezing conditions expected. "},
		{below, 10, "Cold weather expected. "},
		{below, 20, "Cool weather expected. "},
		{below, 30, "Pleasant weather expected. "},
		{below, 35, "Warm weather expected. "},
	},
	fallback: "Very hot weather expected. ",
}

var baseLayerByTemperature = table{
	bands: []band{
		{below, 5, "Wear heavy winter clothes: thick coat, scarf, gloves, warm boots"},
		{below, 15, "Wear warm clothes: jacket or sweater, long pants"},
		{below, 25, "Wear light layers: t-shirt with a light jacket or cardigan"},
		{below, 32, "Wear light, breathable clothes: t-shirt, shorts or light pants"},
	},
	fallback: "Wear very light, loose-fitting clothes in light colors to reflect heat",
}

func predictWeather(temp, humidity float64) string {
	prediction := weatherByTemperature.lookup(temp)

	switch {
	case humidity > 80 && temp > 15:
		prediction += "High humidity with possible rain showers in the next hour. "
	case humidity > 70:
		prediction += "Moderate to high humidity, clouds likely. "
	case humidity < 30:
		prediction += "Very dry air, clear skies expected. "
	default:
		prediction += "Comfortable humidity levels. "
	}

	switch {
	case temp > 30 && humidity > 60:
		prediction += "Expect muggy, uncomfortable conditions."
	case temp < 5 && humidity > 70:
		prediction += "Damp, cold conditions - feels colder than actual temperature."
	}

	return prediction
}

func clothingAdvice(temp, humidity float64) string {
	advice := []string{baseLayerByTemperature.lookup(temp)}

	if humidity > 80 && temp > 10 {
		advice = append(advice,
			"Take an umbrella - high chance of rain",
			"Consider waterproof shoes",
		)
	} else if humidity > 75 && temp > 15 {
		advice = append(advice, "Consider bringing an umbrella - rain is possible")
	}

	if temp > 35 {
		advice = append(advice,
			"Wear a hat and sunglasses for sun protection",
			"Light colors recommended to stay cooler",
		)
	}

	if humidity < 30 {
		advice = append(advice, "Apply moisturizer - dry air can irritate skin")
	}

	return sentences(advice)
}
