package model

// Destination is an immutable snapshot of directory-API data for one country,
// built per request. Currencies and languages carry a single "N/A" entry when
// the upstream omits them, so an empty list never means "data not found".
type Destination struct {
	CountryCode string   `json:"country_code"`
	CountryName string   `json:"country_name"`
	Capital     string   `json:"capital"`
	Region      string   `json:"region"`
	Population  int64    `json:"population"`
	Currencies  []string `json:"currencies"`
	Languages   []string `json:"languages"`
}

// CountryCodeResponse is the result of resolving a country name to its code.
type CountryCodeResponse struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}
