package model

// ServiceInfo is the descriptor served at the API root.
type ServiceInfo struct {
	Message     string            `json:"message"`
	Description string            `json:"description"`
	DataSources []string          `json:"data_sources"`
	Endpoints   map[string]string `json:"endpoints"`
}

// NewServiceInfo builds the static service descriptor.
func NewServiceInfo() ServiceInfo {
	return ServiceInfo{
		Message:     "Travel Data Aggregator API",
		Description: "Aggregates data from multiple public APIs to provide travel information",
		DataSources: []string{
			"REST Countries API - Country information",
			"Open-Meteo API - Weather data",
		},
		Endpoints: map[string]string{
			"destinations":           "GET /destinations - List popular travel destinations",
			"destination_search":     "GET /destinations/search?country=NAME - Resolve a country name to its code",
			"destination_info":       "GET /destinations/{country_code} - Get detailed country info",
			"travel_summary":         "POST /travel-summary - Get aggregated travel summary with weather",
			"travel_summary_by_name": "POST /travel-summary-by-name - Get travel summary by country name",
		},
	}
}
