package api

// GeocodingGateway defines the interface for place-name to coordinate lookups
type GeocodingGateway interface {
	// Resolve issues a top-1 geocoding search for placeName. It reports absence
	// (found=false) both when no result matches and when the call itself fails;
	// transport errors are never propagated to the caller.
	Resolve(placeName string) (lat float64, lon float64, found bool)
}
