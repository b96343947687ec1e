package advisor

import (
	"strings"

	"env_advisor/internal/models"
)

// Warning labels.
const (
	WarnExtremeHeat   = "🔥 EXTREME HEAT WARNING"
	WarnHeat          = "⚠️ Heat warning"
	WarnExtremeCold   = "🥶 EXTREME COLD WARNING"
	WarnCold          = "❄️ Cold warning"
	WarnHeavyRain     = "💧 Very high humidity - expect heavy rain"
	WarnDryAir        = "🌵 Very dry air warning"
	WarnHazardousDust = "🚨 HAZARDOUS dust levels!"
	WarnVeryUnhealthy = "⚠️ Very unhealthy dust levels"
	WarnSensitiveDust = "😷 Unhealthy dust for sensitive groups"
	WarnDangerousGas  = "🚨 DANGEROUS gas levels!"
	WarnHighGas       = "⚠️ High gas concentration"
	WarnElevatedGas   = "⚡ Elevated gas levels"
)

// GoodConditionsNotice is the quick-summary message when nothing warrants a warning.
const GoodConditionsNotice = "✅ Good conditions - enjoy your day!"

// Essential equipment tags.
const (
	EssentialMask     = "😷 Mask (N95/KN95)"
	EssentialUmbrella = "☂️ Umbrella"
	EssentialJacket   = "🧥 Jacket/Coat"
	EssentialSun      = "🕶️ Sun protection"
)

// escalate moves urgency up. Critical always applies; high only lifts a
// normal level, so an earlier critical survives later high-only checks.
func escalate(current, to models.Urgency) models.Urgency {
	if to == models.UrgencyCritical || current == models.UrgencyNormal {
		return to
	}
	return current
}

// ruleBasedInsights runs temperature, humidity, dust and gas checks in that order.
func ruleBasedInsights(r models.SensorReading) models.Insights {
	in := models.Insights{
		WeatherWarnings:    []string{},
		AirQualityWarnings: []string{},
		UrgencyLevel:       models.UrgencyNormal,
	}

	switch t := r.Temperature; {
	case t > 38:
		in.WeatherWarnings = append(in.WeatherWarnings, WarnExtremeHeat)
		in.UrgencyLevel = escalate(in.UrgencyLevel, models.UrgencyCritical)
	case t > 35:
		in.WeatherWarnings = append(in.WeatherWarnings, WarnHeat)
		in.UrgencyLevel = escalate(in.UrgencyLevel, models.UrgencyHigh)
	case t < -5:
		in.WeatherWarnings = append(in.WeatherWarnings, WarnExtremeCold)
		in.UrgencyLevel = escalate(in.UrgencyLevel, models.UrgencyCritical)
	case t < 5:
		in.WeatherWarnings = append(in.WeatherWarnings, WarnCold)
		in.UrgencyLevel = escalate(in.UrgencyLevel, models.UrgencyHigh)
	}

	switch {
	case r.Humidity > 85 && r.Temperature > 25:
		in.WeatherWarnings = append(in.WeatherWarnings, WarnHeavyRain)
	case r.Humidity < 25:
		in.WeatherWarnings = append(in.WeatherWarnings, WarnDryAir)
	}

	switch d := r.DustDensity; {
	case d > hazardDustLimit:
		in.AirQualityWarnings = append(in.AirQualityWarnings, WarnHazardousDust)
		in.UrgencyLevel = escalate(in.UrgencyLevel, models.UrgencyCritical)
	case d > severeDustLimit:
		in.AirQualityWarnings = append(in.AirQualityWarnings, WarnVeryUnhealthy)
		in.UrgencyLevel = escalate(in.UrgencyLevel, models.UrgencyHigh)
	case d > maskDustLimit:
		in.AirQualityWarnings = append(in.AirQualityWarnings, WarnSensitiveDust)
	}

	switch g := r.GasValue; {
	case g > hazardGasLimit:
		in.AirQualityWarnings = append(in.AirQualityWarnings, WarnDangerousGas)
		in.UrgencyLevel = escalate(in.UrgencyLevel, models.UrgencyCritical)
	case g > maskGasLimit:
		in.AirQualityWarnings = append(in.AirQualityWarnings, WarnHighGas)
		in.UrgencyLevel = escalate(in.UrgencyLevel, models.UrgencyHigh)
	case g > elevatedGasLimit:
		in.AirQualityWarnings = append(in.AirQualityWarnings, WarnElevatedGas)
	}

	return in
}

func quickSummary(a models.Advisory, in models.Insights) models.QuickSummary {
	summary := models.QuickSummary{
		Urgency:        in.UrgencyLevel,
		CanGoOutSafely: !a.StayHome,
		Essentials:     []string{},
	}

	if a.MaskNeeded {
		summary.Essentials = append(summary.Essentials, EssentialMask)
	}

	clothing := strings.ToLower(a.ClothingRecommendation)
	if strings.Contains(clothing, "umbrella") {
		summary.Essentials = append(summary.Essentials, EssentialUmbrella)
	}
	if strings.Contains(clothing, "jacket") || strings.Contains(clothing, "coat") {
		summary.Essentials = append(summary.Essentials, EssentialJacket)
	}
	if strings.Contains(clothing, "hat") || strings.Contains(clothing, "sunglasses") {
		summary.Essentials = append(summary.Essentials, EssentialSun)
	}

	warnings := make([]string, 0, len(in.WeatherWarnings)+len(in.AirQualityWarnings))
	warnings = append(warnings, in.WeatherWarnings...)
	warnings = append(warnings, in.AirQualityWarnings...)

	if len(warnings) > 0 {
		summary.Warnings = warnings
	} else {
		summary.Message = GoodConditionsNotice
	}

	return summary
}
