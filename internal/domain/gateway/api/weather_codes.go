package api

// WMO weather interpretation codes as published by Open-Meteo.
var weatherCodeDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	95: "Thunderstorm",
}

// DescribeWeatherCode translates a numeric weather code into a human-readable
// description. Codes absent from the table map to "Unknown".
func DescribeWeatherCode(code int) string {
	if description, ok := weatherCodeDescriptions[code]; ok {
		return description
	}
	return "Unknown"
}
