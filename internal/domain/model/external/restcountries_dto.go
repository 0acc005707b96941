package external

// Country represents one record from the REST Countries API
type Country struct {
	Name       CountryName         `json:"name"`
	CCA2       string              `json:"cca2"`
	Capital    []string            `json:"capital"`
	Region     string              `json:"region"`
	Population int64               `json:"population"`
	Currencies map[string]Currency `json:"currencies"`
	Languages  map[string]string   `json:"languages"`
}

// CountryName holds the naming variants of a country
type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Currency describes a currency entry keyed by its ISO code
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// APIErrorResponse represents error responses from the REST Countries API
type APIErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
