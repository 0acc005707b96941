package enrichment

import "fmt"

var bestTimes = map[string]string{
	"JP": "March-May (cherry blossoms) or October-November (autumn colors)",
	"FR": "April-June or September-October for mild weather",
	"IT": "April-June or September-October to avoid crowds",
	"ES": "March-May or September-November for pleasant weather",
	"TH": "November-February (cool and dry season)",
	"AU": "September-November (spring) or March-May (autumn)",
	"GB": "May-September for warmer weather",
	"DE": "May-September for outdoor activities",
	"NZ": "December-February (summer) for best weather",
	"CA": "June-August for summer, December-March for skiing",
}

// BestTimeToVisit returns the recommended season for a country code, falling
// back to a generic region hint for codes outside the table.
func BestTimeToVisit(region string, countryCode string) string {
	if bestTime, ok := bestTimes[countryCode]; ok {
		return bestTime
	}
	return fmt.Sprintf("Research the best season for %s", region)
}
