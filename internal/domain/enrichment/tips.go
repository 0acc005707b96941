package enrichment

import (
	"fmt"
	"strings"

	"travel-api/internal/domain/model"
)

var regionTips = map[string]string{
	"Europe":   "Consider getting a travel adapter for EU plugs",
	"Asia":     "Learn a few local phrases - it's appreciated!",
	"Oceania":  "Don't forget reef-safe sunscreen for beach visits",
	"Americas": "Check visa requirements before traveling",
	"Africa":   "Consult a travel health clinic for vaccinations",
}

// TravelTips derives advisory text from the destination and its current
// weather. The rules fire in a fixed order: temperature band, precipitation,
// region, then a generic closing tip. Output order is part of the contract.
func TravelTips(countryName string, region string, weather model.Weather) []string {
	var tips []string

	switch {
	case weather.TemperatureCelsius > 30:
		tips = append(tips, "Pack light, breathable clothing - it's hot!")
		tips = append(tips, "Stay hydrated and use sunscreen")
	case weather.TemperatureCelsius < 10:
		tips = append(tips, "Bring warm layers - it's cold!")
		tips = append(tips, "Pack a good jacket and warm accessories")
	default:
		tips = append(tips, "Weather is mild - pack versatile clothing")
	}

	description := strings.ToLower(weather.WeatherDescription)
	if strings.Contains(description, "rain") || strings.Contains(description, "drizzle") {
		tips = append(tips, "Bring an umbrella or rain jacket")
	}

	if tip, ok := regionTips[region]; ok {
		tips = append(tips, tip)
	}

	tips = append(tips, fmt.Sprintf("Research local customs and etiquette for %s", countryName))

	return tips
}
