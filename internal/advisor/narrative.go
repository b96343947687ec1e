package advisor

import (
	"fmt"
	"math"
)

var temperatureNarrative = table{
	bands: []band{
		{below, 0, "is below freezing. Risk of frostbite and hypothermia. Water freezes at this temperature. Exposed skin can be damaged in minutes."},
		{below, 10, "is cold. Your body will need to work harder to maintain core temperature. Multiple layers are essential."},
		{below, 20, "is cool and comfortable for most activities. Light jacket recommended as you may feel chilly in shade or wind."},
		{below, 26, "is ideal room temperature. Most comfortable range for human activity. No special precautions needed."},
		{below, 32, "is warm. You'll likely feel comfortable but may start sweating during physical activity. Stay hydrated."},
		{below, 38, "is hot. Risk of heat exhaustion increases. Drink plenty of water and limit strenuous activity. Seek shade when possible."},
	},
	fallback: "is extremely hot and dangerous. High risk of heat stroke. Avoid outdoor activities. This temperature can be life-threatening without proper precautions.",
}

var humidityNarrative = table{
	bands: []band{
		{below, 25, "is very dry. You may experience dry skin, irritated eyes, and respiratory discomfort. Static electricity increases. "},
		{below, 40, "is on the dry side. Generally comfortable, but some people may notice dry skin or throat. "},
		{below, 60, "is in the comfortable range. This is ideal for most people. "},
		{below, 75, "is getting humid. You may start feeling sticky, especially with warmer temperatures. "},
		{below, 85, "is high. The air feels heavy and muggy. Sweat doesn't evaporate well, making it harder to cool down. "},
	},
	fallback: "is very high. The air is saturated with moisture. Rain is likely. Mold growth risk increases indoors. ",
}

var dustNarrative = table{
	bands: []band{
		{atMost, 12, "is excellent. This meets WHO guidelines for healthy air. No health concerns for anyone. "},
		{atMost, 35, "is good. This is acceptable for general public, though sensitive individuals may want to monitor their symptoms. "},
		{atMost, 55, "is moderate and unhealthy for sensitive groups. Children, elderly, and those with asthma or heart disease should limit prolonged outdoor activity. "},
		{atMost, 150, "is unhealthy. Everyone may begin to experience health effects. Active children, adults, and people with respiratory disease should limit prolonged outdoor exertion. "},
		{atMost, 250, "is very unhealthy. Health alert level. Everyone may experience more serious health effects. Avoid prolonged outdoor activities. N95 masks are recommended. "},
	},
	fallback: "is HAZARDOUS. Health warning of emergency conditions. The entire population is likely to be affected. Stay indoors with windows closed. Use air purifiers if available. ",
}

var gasNarrative = table{
	bands: []band{
		{below, 100, "is normal. This represents typical background air quality with no concerning volatile organic compounds (VOCs) or harmful gases. "},
		{below, 200, "is slightly elevated but generally safe. This might indicate normal indoor activities like cooking or cleaning. Ensure adequate ventilation. "},
		{below, 400, "is elevated. This suggests moderate VOC presence from sources like paints, cleaning products, or vehicle exhaust. Sensitive individuals may notice odors or mild irritation. "},
		{below, 600, "is high. Significant VOC concentration detected. May cause headaches, eye irritation, or respiratory discomfort. Identify and remove pollution source. Increase ventilation. "},
		{below, 1000, "is very high and concerning. This indicates poor air quality from strong chemical sources or combustion. May cause dizziness, nausea, or difficulty breathing. Leave the area if symptoms occur. "},
	},
	fallback: "is DANGEROUS. This level indicates potentially toxic gas concentrations. Immediate health risks including severe respiratory distress, nervous system effects, or carbon monoxide poisoning. Evacuate area and seek fresh air immediately. ",
}

func analyzeTemperature(temp float64) string {
	return FormatNumber(temp) + "°C " + temperatureNarrative.lookup(temp)
}

func analyzeHumidity(humidity, temp float64) string {
	analysis := FormatNumber(humidity) + "% humidity " + humidityNarrative.lookup(humidity)
	if temp > 27 && humidity > 60 {
		analysis += fmt.Sprintf("Combined with the temperature, it feels like %s°C (heat index). ",
			FormatNumber(HeatIndex(temp, humidity)))
	}
	return analysis
}

// HeatIndex is the rounded "feels like" temperature used in the humidity
// narrative. Ties round away from zero.
func HeatIndex(temp, humidity float64) float64 {
	return math.Round(temp + 0.5*(humidity-60)*0.1)
}

func analyzeDust(dust float64) string {
	analysis := "Dust density of " + FormatNumber(dust) + " µg/m³ " + dustNarrative.lookup(dust)
	if dust > severeDustLimit {
		analysis += "This level typically indicates wildfires, dust storms, or severe pollution events nearby."
	}
	return analysis
}

func analyzeGas(gas float64) string {
	return "Gas sensor reading of " + FormatNumber(gas) + " ppm " + gasNarrative.lookup(gas)
}
